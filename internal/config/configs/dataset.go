package configs

// Dataset source kinds.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Dataset selects where campaign and prediction records are read from.
type Dataset struct {
	Source          string `env:"SOURCE" envDefault:"csv" validate:"oneof=csv postgres"`
	CampaignsPath   string `env:"CAMPAIGNS_PATH" envDefault:"dados_campanhas.csv"`
	PredictionsPath string `env:"PREDICTIONS_PATH" envDefault:"previsoes_modelo.csv"`
	// Delimiter is the CSV field separator; only its first rune is used.
	Delimiter string `env:"DELIMITER" envDefault:","`
}
