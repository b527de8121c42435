package csvfile

// Column names of the source files, as produced by the data generator.
const (
	ColChannel       = "canal"
	ColCostTotal     = "custo_total"
	ColConversions   = "conversoes"
	ColProbability   = "probabilidade_conversao"
	ColConverted     = "converteu"
	ColRealConverted = "real_converteu"
)
