package revenue

// vatDivisor é o divisor fixo de IVA (19%). Todo valor bruto vira líquido por
// divisão direta, sem arredondamento intermediário: arredondar é papel da
// camada de exibição.
const vatDivisor = 1.19

// Net converte um valor bruto em líquido de IVA.
func Net(gross float64) float64 {
	return gross / vatDivisor
}

// CentsToEuros converte centavos (unidade mínima da fonte de billing) em euros.
func CentsToEuros(cents int64) float64 {
	return float64(cents) / 100
}

// NetFromCents combina as duas conversões: centavos brutos em euros líquidos.
func NetFromCents(cents int64) float64 {
	return Net(CentsToEuros(cents))
}
