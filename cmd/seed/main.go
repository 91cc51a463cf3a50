// seed puebla la base con datos de demostración del taller: telas,
// costureras y referencias de producto.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL / DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/infrastructure/postgres"
	"github.com/kavins/produccion-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()

	fabricRepo := postgres.NewFabricRepository(pool)
	fabrics := []entity.Fabric{
		{Name: "Malha PV", Color: "Preto", ColorHex: "#1a1a1a", StockRolls: decimal.NewFromInt(12)},
		{Name: "Malha PV", Color: "Branco", ColorHex: "#f5f5f5", StockRolls: decimal.NewFromInt(8)},
		{Name: "Malha PV", Color: "Azul Marinho", ColorHex: "#1f3a5f", StockRolls: decimal.NewFromFloat(6.5)},
		{Name: "Suplex", Color: "Preto", ColorHex: "#1a1a1a", StockRolls: decimal.NewFromInt(10)},
		{Name: "Suplex", Color: "Vinho", ColorHex: "#722f37", StockRolls: decimal.NewFromFloat(4.5)},
	}
	for _, f := range fabrics {
		f.ID = uuid.NewString()
		f.CreatedAt = now
		f.UpdatedAt = now
		if err := fabricRepo.Create(&f); err != nil {
			fmt.Fprintf(os.Stderr, "tela %s %s: %v\n", f.Name, f.Color, err)
			continue
		}
		fmt.Printf("tela: %s %s (%s rollos)\n", f.Name, f.Color, f.StockRolls)
	}

	seamstressRepo := postgres.NewSeamstressRepository(pool)
	seamstresses := []entity.Seamstress{
		{Name: "Maria das Graças", Phone: "11 98888-1001", Specialty: "Overloque", City: "São Paulo"},
		{Name: "Ana Paula Souza", Phone: "11 98888-1002", Specialty: "Galoneira", City: "Guarulhos"},
		{Name: "Josefa Lima", Phone: "11 98888-1003", Specialty: "Reta", City: "São Paulo"},
	}
	for _, s := range seamstresses {
		s.ID = uuid.NewString()
		s.Active = true
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := seamstressRepo.Create(&s); err != nil {
			fmt.Fprintf(os.Stderr, "costurera %s: %v\n", s.Name, err)
			continue
		}
		fmt.Printf("costurera: %s (%s)\n", s.Name, s.Specialty)
	}

	referenceRepo := postgres.NewReferenceRepository(pool)
	references := []entity.ProductReference{
		{
			Code:          "REF-101",
			Description:   "Camiseta básica gola redonda",
			DefaultFabric: "Malha PV",
			DefaultColors: []entity.ProductColor{
				{Name: "Preto", Hex: "#1a1a1a"},
				{Name: "Branco", Hex: "#f5f5f5"},
			},
			DefaultGrid:            entity.GridStandard,
			EstimatedPiecesPerRoll: 40,
		},
		{
			Code:          "REF-205",
			Description:   "Legging cintura alta",
			DefaultFabric: "Suplex",
			DefaultColors: []entity.ProductColor{
				{Name: "Preto", Hex: "#1a1a1a"},
				{Name: "Vinho", Hex: "#722f37"},
			},
			DefaultGrid:            entity.GridStandard,
			EstimatedPiecesPerRoll: 30,
		},
	}
	for _, r := range references {
		r.ID = uuid.NewString()
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := referenceRepo.Create(&r); err != nil {
			fmt.Fprintf(os.Stderr, "referencia %s: %v\n", r.Code, err)
			continue
		}
		fmt.Printf("referencia: %s (%s)\n", r.Code, r.Description)
	}

	fmt.Println("seed completado")
}
