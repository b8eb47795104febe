package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rohansood98/ggs-accounting/internal/config"
	"github.com/rohansood98/ggs-accounting/internal/db"
	"github.com/rohansood98/ggs-accounting/internal/logger"
	"github.com/rohansood98/ggs-accounting/internal/store"
)

const maxLoginAttempts = 3

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if err := ensureDirectories(cfg.DataDir); err != nil {
		log.Fatal("prepare working directories", zap.Error(err))
	}
	conn, err := db.Connect(cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal("database error", zap.Error(err))
	}
	st := store.New(conn)

	role, ok := login(st, log)
	if !ok {
		return
	}
	log.Info("login successful", zap.String("role", role))
	runConsole(st, os.Stdin, os.Stdout)
}

// ensureDirectories creates the working directories the application writes
// to: the database location and the export target.
func ensureDirectories(dataDir string) error {
	for _, d := range []string{dataDir, filepath.Join(dataDir, "exports")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// login prompts for credentials on the terminal, allowing a few attempts.
func login(st *store.Store, log *zap.Logger) (string, bool) {
	reader := bufio.NewReader(os.Stdin)
	for attempt := 0; attempt < maxLoginAttempts; attempt++ {
		fmt.Print("Username: ")
		username, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}
		password, err := readPassword(reader)
		if err != nil {
			return "", false
		}
		role, err := st.VerifyUser(strings.TrimSpace(username), password)
		if err != nil {
			log.Error("login check failed", zap.Error(err))
			continue
		}
		if role != "" {
			return role, true
		}
		fmt.Println("Invalid credentials")
	}
	return "", false
}

// readPassword hides the input when stdin is a terminal and falls back to a
// plain line read otherwise (tests, pipes).
func readPassword(reader *bufio.Reader) (string, error) {
	fmt.Print("Password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
