package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает file, если он существует, затем флаг -port перекрывает PORT.
// Уже заданные переменные окружения не перезаписываются.
func Load(file string, args []string) (loaded bool, err error) {
	err = godotenv.Load(file)
	switch {
	case err == nil:
		loaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, fmt.Errorf("load %s: %w", file, err)
	}

	flags := flag.NewFlagSet("service", flag.ContinueOnError)
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return loaded, fmt.Errorf("parse flags: %w", err)
	}

	if *portFlag != "" {
		if err := os.Setenv("PORT", *portFlag); err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}
