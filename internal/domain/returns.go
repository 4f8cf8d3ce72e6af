package domain

// DailyReturns convierte una serie de precios diarios en retornos simples.
// El resultado tiene len(prices)-1 elementos (vacío si hay menos de 2 precios).
// Un precio previo igual a 0 produce un retorno de 0.0 en lugar de dividir por cero.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			returns = append(returns, 0.0)
			continue
		}
		returns = append(returns, (prices[i]-prev)/prev)
	}
	return returns
}
