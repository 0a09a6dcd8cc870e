// seed aplica el esquema y carga datos de demostración para desarrollo local:
// una empresa (company_id=1) con dos bodegas, proveedores y productos con
// posiciones de inventario, varias de ellas por debajo del umbral para que
// GET /api/companies/1/alerts/low-stock devuelva alertas.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca scripts/schema.sql relativo al directorio actual.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	schemaPath := "scripts/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer schema.sql")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	const demo = `
	INSERT INTO suppliers (name, contact_email) VALUES
	    ('Distribuidora Andina', 'ventas@andina.co'),
	    ('Importadora del Pacífico', 'pedidos@pacifico.co')
	ON CONFLICT DO NOTHING;

	INSERT INTO warehouses (company_id, name) VALUES
	    (1, 'Bodega Central'),
	    (1, 'Bodega Norte')
	ON CONFLICT DO NOTHING;

	INSERT INTO products (name, sku, price, supplier_id) VALUES
	    ('Café molido 500g', 'CAF-500', 18500, 1),
	    ('Azúcar morena 1kg', 'AZU-100', 6200, 2),
	    ('Filtros de papel x40', 'FIL-040', 9900, NULL)
	ON CONFLICT (sku) DO NOTHING;

	INSERT INTO inventories (product_id, warehouse_id, quantity, low_stock_threshold)
	SELECT p.id, w.id, v.quantity, v.threshold
	FROM (VALUES
	    ('CAF-500', 'Bodega Central', 5::BIGINT, 10::BIGINT),
	    ('AZU-100', 'Bodega Central', 42::BIGINT, 10::BIGINT),
	    ('FIL-040', 'Bodega Norte', 3::BIGINT, 10::BIGINT)
	) AS v(sku, warehouse, quantity, threshold)
	JOIN products   p ON p.sku = v.sku
	JOIN warehouses w ON w.name = v.warehouse
	ON CONFLICT (product_id, warehouse_id) DO NOTHING;`

	if _, err := pool.Exec(ctx, demo); err != nil {
		log.Fatal().Err(err).Msg("insertar datos de demostración")
	}
	log.Info().Msg("datos de demostración cargados")
}
