package config

type DriverConfig struct {
	Redis  Redis
	Logger Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App     App
	Adapter Adapter
	Mock    Mock
	Tenant  Tenant
	Cache   Cache
}

type App struct {
	Env             string
	Port            string
	Version         string
	EndpointPrefix  string
	APIKey          string
	MaxRequests     int
	ShutdownTimeout int
}

// Adapter is the vendor-neutral client configuration described by the
// adapter contract: vendor, base URL and auth are required, the rest
// are tuning knobs.
type Adapter struct {
	Vendor          string `validate:"required"`
	BaseUrl         string `validate:"required,url"`
	AuthType        string `validate:"required,oneof=apikey"`
	APIKey          string `validate:"required"`
	TimeoutInSecond int    `validate:"min=1"`
	Retries         int    `validate:"min=0"`
	RetryDelayInMs  int    `validate:"min=0"`
}

// Mock tunes the simulated vendor only; ignored by real vendors.
type Mock struct {
	DelayInMs        int    `validate:"min=0"`
	ErrorRatePercent int    `validate:"percent"`
	DataSet          string `validate:"data_set"`
}

type Tenant struct {
	ID               string
	DefaultPatientID string
}

type Cache struct {
	PatientSearchTTLInSecond int
}
