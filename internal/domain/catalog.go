package domain

import "encoding/json"

// Singleton ids of the catalog documents.
const (
	ConfigAccessory = "accesorio"
	ConfigIPhone    = "iphone"
)

// AccessoryConfig is the accessory catalog: models -> ranges -> series, plus the
// per-combination settings, which are passed through untouched.
type AccessoryConfig struct {
	Modelos             []string                       `json:"modelos"`
	GamasPorModelo      map[string][]string            `json:"gamas_por_modelo"`
	SeriesPorModeloGama map[string]map[string][]string `json:"series_por_modelo_gama"`
	Configuraciones     json.RawMessage                `json:"configuraciones"`
}

// IPhoneConfig is the iPhone catalog: series -> models, plus per-combination settings.
type IPhoneConfig struct {
	Series          []string            `json:"series"`
	ModelosPorSerie map[string][]string `json:"modelos_por_serie"`
	Configuraciones json.RawMessage     `json:"configuraciones"`
}

// ConfigDocument is a stored singleton document.
type ConfigDocument struct {
	ID        string `db:"id"`
	Body      string `db:"body"`
	Version   int    `db:"version"`
	UpdatedAt string `db:"updated_at"`
}
