package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	CarrierAPIURL   string
	CarrierToken    string
	CarrierShopID   int
	RedisAddr       string
	ShipmentSyncOff bool
}
