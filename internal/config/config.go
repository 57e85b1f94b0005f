package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads .env if present; real environment variables always win.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Ingen .env-fil hittades — fortsätter med systemets miljövariabler")
	} else {
		log.Println("✅ .env laddad")
	}
}

// Getenv returns the variable or def when unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// AtoiEnv returns the variable parsed as int, or def when unset or invalid.
func AtoiEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// CSVSources is the comma separated list of price list URLs or file paths.
func CSVSources() string {
	return Getenv("CSV_SOURCES", "data/master_jacobs_products.csv,data/master_jacobs_extras.csv")
}

// CommerceDomain is the host of the external webshop that order URLs point at.
func CommerceDomain() string {
	return Getenv("COMMERCE_DOMAIN", "www.masterjacobs.se")
}

// CommerceAPIBase is the external webshop's store API root.
func CommerceAPIBase() string {
	return Getenv("COMMERCE_API_BASE", "https://www.masterjacobs.se/shop/api/store")
}
