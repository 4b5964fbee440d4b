// seeddemo puebla la base con ventas de demostración: 30 ventas repartidas
// en los últimos 30 días, con líneas tomadas al azar del catálogo existente.
// Pensado para probar el historial, los filtros y los reportes sin operar la caja.
//
// Uso: go run ./cmd/seeddemo [-ventas 30] [-user <id>]
// Si se pasa -user, cada venta queda además referenciada en su historial de compras.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
	"github.com/nicolasct/ventapos-api/internal/infrastructure/postgres"
	"github.com/nicolasct/ventapos-api/pkg/config"
)

func main() {
	numVentas := flag.Int("ventas", 30, "cantidad de ventas demo a generar")
	userID := flag.String("user", "", "usuario al que referenciar las ventas (opcional)")
	flag.Parse()

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

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	productos, err := productRepo.List(repository.ProductFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar productos: %v\n", err)
		os.Exit(1)
	}
	if len(productos) == 0 {
		fmt.Fprintln(os.Stderr, "no hay productos en el catálogo; cree algunos antes de sembrar ventas")
		os.Exit(1)
	}

	metodos := []string{entity.PagoEfectivo, entity.PagoTarjeta, entity.PagoTransferencia}
	now := time.Now()

	for i := 0; i < *numVentas; i++ {
		// Fecha al azar dentro de los últimos 30 días, a una hora de atención.
		fecha := now.AddDate(0, 0, -rand.Intn(30))
		fecha = time.Date(fecha.Year(), fecha.Month(), fecha.Day(),
			8+rand.Intn(12), rand.Intn(60), rand.Intn(60), 0, fecha.Location())

		sale := &entity.Sale{
			ID:         uuid.New().String(),
			UserID:     *userID,
			MetodoPago: metodos[rand.Intn(len(metodos))],
			Fecha:      fecha,
		}
		numLineas := 1 + rand.Intn(3)
		usados := make(map[string]bool, numLineas)
		for len(sale.Lineas) < numLineas {
			p := productos[rand.Intn(len(productos))]
			if usados[p.ID] {
				continue
			}
			usados[p.ID] = true
			sale.Lineas = append(sale.Lineas, entity.SaleLine{
				ProductoID: p.ID,
				Nombre:     p.Nombre,
				Precio:     p.Precio,
				Cantidad:   1 + rand.Intn(3),
			})
		}
		sale.Total = sale.ComputeTotal()

		if err := saleRepo.Create(sale); err != nil {
			fmt.Fprintf(os.Stderr, "insertar venta %d: %v\n", i+1, err)
			os.Exit(1)
		}
		if *userID != "" {
			if err := saleRepo.AppendUserSale(*userID, sale.ID); err != nil {
				fmt.Fprintf(os.Stderr, "referenciar venta %d: %v\n", i+1, err)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("listo: %d ventas demo generadas\n", *numVentas)
}
