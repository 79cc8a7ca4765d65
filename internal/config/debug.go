package config

import "os"

func IsDebug() bool {
	return os.Getenv("ARGAND_DEBUG") == "1"
}
