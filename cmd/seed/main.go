// seed genera un script SQL con datos de demostración: categorías, productos,
// lotes con su transacción inicial y proveedores leídos desde un CSV con el
// mismo contrato de columnas que el import del API.
//
// Uso: go run ./cmd/seed [ruta/Suppliers.csv]
// Por defecto busca Suppliers.csv en el directorio actual; si no existe, el
// script se genera solo con el catálogo de demostración.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

type demoProduct struct {
	name, sku, unit, category string
	price                     string
	openingQty                int
}

var demoCategories = []string{"Lácteos", "Bebidas", "Panadería", "Aseo"}

var demoProducts = []demoProduct{
	{"Leche entera 1L", "LAC-001", "unidad", "Lácteos", "4.50", 40},
	{"Yogur natural 500g", "LAC-002", "unidad", "Lácteos", "3.20", 24},
	{"Agua mineral 600ml", "BEB-001", "unidad", "Bebidas", "1.10", 120},
	{"Jugo de naranja 1L", "BEB-002", "unidad", "Bebidas", "2.80", 36},
	{"Pan de molde", "PAN-001", "unidad", "Panadería", "2.40", 18},
	{"Detergente 1kg", "ASE-001", "unidad", "Aseo", "5.90", 30},
}

func main() {
	csvPath := "Suppliers.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración del supermercado\n")
	out.WriteString("-- Generado con go run ./cmd/seed\n\n")

	out.WriteString("-- 1. Categorías\n")
	for _, name := range demoCategories {
		fmt.Fprintf(out, "INSERT INTO categories (id, name) VALUES ('%s', '%s')\nON CONFLICT (name) DO NOTHING;\n",
			uuid.NewString(), escapeSQL(name))
	}
	out.WriteString("\n-- 2. Productos\n")
	for _, p := range demoProducts {
		fmt.Fprintf(out, "INSERT INTO products (id, category_id, product_name, sku, unit, default_price)\n")
		fmt.Fprintf(out, "SELECT '%s', id, '%s', '%s', '%s', %s FROM categories WHERE name = '%s'\n",
			uuid.NewString(), escapeSQL(p.name), p.sku, p.unit, p.price, escapeSQL(p.category))
		out.WriteString("ON CONFLICT (sku) DO NOTHING;\n")
	}

	out.WriteString("\n-- 3. Lotes con su transacción de entrada\n")
	for i, p := range demoProducts {
		batchID := uuid.NewString()
		fmt.Fprintf(out, "INSERT INTO stock_batches (id, product_id, batch_number, expiry_date, retail_price, current_quantity)\n")
		fmt.Fprintf(out, "SELECT '%s', id, 'DEMO-%03d', now() + interval '30 days', %s, %d FROM products WHERE sku = '%s'\n",
			batchID, i+1, p.price, p.openingQty, p.sku)
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		fmt.Fprintf(out, "INSERT INTO stock_transactions (id, batch_id, transaction_type, quantity, recorded_by, timestamp)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', 'stock_in', %d, 'System Auto-Log (Delivery)', now())\nON CONFLICT (id) DO NOTHING;\n",
			uuid.NewString(), batchID, p.openingQty)
	}

	suppliers := readSuppliers(csvPath)
	if len(suppliers) > 0 {
		out.WriteString("\n-- 4. Proveedores (desde CSV)\n")
		for _, s := range suppliers {
			fmt.Fprintf(out, "INSERT INTO suppliers (id, supplier_code, name, company_name, category, status, importance_level)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s')\nON CONFLICT (id) DO NOTHING;\n",
				uuid.NewString(), escapeSQL(s["supplierCode"]), escapeSQL(s["name"]),
				escapeSQL(s["companyName"]), escapeSQL(s["category"]),
				defaultIfEmpty(s["status"], "Active"), defaultIfEmpty(s["importanceLevel"], "Normal"))
		}
	}

	fmt.Printf("Generado %s: %d productos, %d proveedores\n", outPath, len(demoProducts), len(suppliers))
}

// readSuppliers carga el CSV de proveedores; devuelve nil si no existe.
// Archivos que no son UTF-8 se reinterpretan como ISO-8859-1.
func readSuppliers(path string) []map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if !utf8.Valid(data) {
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
			data = decoded
		}
	}

	r := csv.NewReader(strings.NewReader(string(data)))
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				row[strings.TrimSpace(h)] = strings.TrimSpace(record[i])
			}
		}
		if row["name"] != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return escapeSQL(s)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
