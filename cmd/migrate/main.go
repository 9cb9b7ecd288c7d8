// Goose tabanlı şema taşıma aracı.
//
//	go run ./cmd/migrate            # ./migrations altındaki tüm migration'ları uygular
//	go run ./cmd/migrate down       # son migration'ı geri alır
//	go run ./cmd/migrate status     # durumu gösterir
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/santiyepro/santiye-api/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("uyarı: .env okunamadı, yalnızca ortam değişkenleri kullanılacak: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("goose: yapılandırma yüklenemedi: %v", err)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "migration dosyalarının dizini")
	flag.Parse()

	db, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("goose: DB bağlantısı açılamadı: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: DB kapatılamadı: %v", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s tamam\n", command)
}
