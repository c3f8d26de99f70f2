// mkfixture generates a synthetic snapshot directory for local runs and demos.
// Column names and physical types alternate between two schema vintages to
// mirror the drift in real registry extracts, and a slice of every batch is
// private, deactivated, or missing its facility code so the filters have
// something to do.
// Usage: go run ./cmd/mkfixture --out testdata/snapshots --period 2025-06 --regions SP,RJ,MG,BA --rows 200
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/parquetread"
)

// modernRow is the current export schema: canonical column names, every
// value a string.
type modernRow struct {
	Code         string `parquet:"CO_UNIDADE"`
	Commercial   string `parquet:"NO_FANTASIA"`
	Legal        string `parquet:"NO_RAZAO_SOCIAL"`
	Municipality string `parquet:"CO_MUNICIPIO_GESTOR"`
	TypeCode     string `parquet:"TP_UNIDADE"`
	Governance   string `parquet:"TP_GESTAO"`
	Deactivated  string `parquet:"DT_DESATIVACAO"`
	Street       string `parquet:"NO_LOGRADOURO"`
	Number       string `parquet:"NU_ENDERECO"`
	District     string `parquet:"DS_BAIRRO"`
	Postal       string `parquet:"DS_CEP"`
	Phone        string `parquet:"NU_TELEFONE"`
}

// legacyRow is an older vintage: squashed column names, numeric codes stored
// as doubles with nulls for missing values, and no deactivation column.
type legacyRow struct {
	Code         *float64 `parquet:"CNES,optional"`
	Commercial   string   `parquet:"NOFANTASIA"`
	Legal        string   `parquet:"NORAZAOSOCIAL"`
	Municipality *float64 `parquet:"CO_MUNICIPIO,optional"`
	TypeCode     *float64 `parquet:"TPUNIDADE,optional"`
	Governance   string   `parquet:"TPGESTAO"`
	Street       string   `parquet:"DS_LOGRADOURO"`
	Number       string   `parquet:"DS_NUMERO"`
	District     string   `parquet:"NO_BAIRRO"`
	Postal       *float64 `parquet:"CO_CEP,optional"`
	Phone        string   `parquet:"DS_TELEFONE"`
}

// seed is one synthetic facility before schema-specific encoding.
type seed struct {
	code         int // 0 means the row has no facility code
	name         string
	legal        string
	municipality int
	typeCode     string
	governance   string
	deactivated  string
	street       string
	number       int
	district     string
	cep          int
	phone        string
}

// Upstream extracts arrive fully uppercased, so the pools are too; title
// casing is the normalizer's job.
var (
	namePool = []string{
		"UBS VILA NOVA",
		"HOSPITAL SÃO LUCAS",
		"CENTRO DE SAÚDE JARDIM AMÉRICA",
		"PRONTO SOCORRO MUNICIPAL",
		"CLÍNICA SANTA MARIA",
		"POLICLÍNICA REGIONAL NORTE",
	}
	legalPool = []string{
		"PREFEITURA MUNICIPAL",
		"SECRETARIA ESTADUAL DE SAÚDE",
		"FUNDAÇÃO HOSPITALAR REGIONAL",
	}
	streetPool = []string{
		"RUA DAS FLORES",
		"AVENIDA PAULISTA",
		"TRAVESSA DO COMÉRCIO",
		"PRAÇA DA MATRIZ",
	}
	districtPool = []string{"CENTRO", "JARDIM AMÉRICA", "VILA NOVA", "SÃO JOSÉ"}

	// "99" is unmapped on purpose and the empty entry leaves the type to the
	// normalizer's default.
	typePool = []string{"02", "05", "73", "36", "70", "99", ""}
	govPool  = []string{"M", "M", "E", "M", "D"}

	// Values the deactivation filter treats as "still active".
	activeSentinels = []string{"", "0", "00000000"}
)

func makeSeed(i int) seed {
	s := seed{
		code:         1000 + i,
		name:         namePool[i%len(namePool)],
		legal:        legalPool[i%len(legalPool)],
		municipality: 350000 + i%100,
		typeCode:     typePool[i%len(typePool)],
		governance:   govPool[i%len(govPool)],
		deactivated:  activeSentinels[i%len(activeSentinels)],
		street:       streetPool[i%len(streetPool)],
		number:       10 + i,
		district:     districtPool[i%len(districtPool)],
		cep:          69900000 + i,
		phone:        fmt.Sprintf("(11) 4002-%04d", 8000+i),
	}
	switch {
	case i%10 == 3:
		s.code = 0
	case i%10 == 7:
		s.governance = "S"
	case i%25 == 9:
		s.deactivated = "20190315"
	}
	if i%15 == 4 {
		s.name = ""
	}
	return s
}

func modernRows(n int) []modernRow {
	rows := make([]modernRow, n)
	for i := range rows {
		s := makeSeed(i)
		code := ""
		if s.code != 0 {
			code = strconv.Itoa(s.code)
		}
		rows[i] = modernRow{
			Code:         code,
			Commercial:   s.name,
			Legal:        s.legal,
			Municipality: strconv.Itoa(s.municipality),
			TypeCode:     s.typeCode,
			Governance:   s.governance,
			Deactivated:  s.deactivated,
			Street:       s.street,
			Number:       strconv.Itoa(s.number),
			District:     s.district,
			Postal:       fmt.Sprintf("%05d-%03d", s.cep/1000, s.cep%1000),
			Phone:        s.phone,
		}
	}
	return rows
}

func legacyRows(n int) []legacyRow {
	rows := make([]legacyRow, n)
	for i := range rows {
		s := makeSeed(i)
		r := legacyRow{
			Commercial:   s.name,
			Legal:        s.legal,
			Municipality: f64(float64(s.municipality)),
			Governance:   s.governance,
			Street:       s.street,
			Number:       strconv.Itoa(s.number),
			District:     s.district,
			Postal:       f64(float64(s.cep)),
			Phone:        s.phone,
		}
		if s.code != 0 {
			r.Code = f64(float64(s.code))
		}
		if s.typeCode != "" {
			v, _ := strconv.Atoi(s.typeCode)
			r.TypeCode = f64(float64(v))
		}
		rows[i] = r
	}
	return rows
}

func f64(v float64) *float64 { return &v }

func writeParquet[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := goparquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	out := flag.String("out", "testdata/snapshots", "output directory root")
	periodStr := flag.String("period", "2025-06", "snapshot period (YYYY-MM)")
	regionsStr := flag.String("regions", "SP,RJ,MG,BA", "comma-separated region codes")
	rows := flag.Int("rows", 200, "rows per region")
	checkOnly := flag.Bool("check", false, "only inspect existing files, don't write")
	flag.Parse()

	period, err := model.ParsePeriod(*periodStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "period: %v\n", err)
		os.Exit(1)
	}
	if *rows <= 0 {
		fmt.Fprintln(os.Stderr, "rows must be positive")
		os.Exit(1)
	}

	var regions []string
	for _, r := range strings.Split(*regionsStr, ",") {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		if !model.KnownRegion(r) {
			fmt.Fprintf(os.Stderr, "unknown region %q\n", r)
			os.Exit(1)
		}
		regions = append(regions, r)
	}
	if len(regions) == 0 {
		fmt.Fprintln(os.Stderr, "no regions given")
		os.Exit(1)
	}

	dir := filepath.Join(*out, period.String())

	if *checkOnly {
		for _, region := range regions {
			path := filepath.Join(dir, region+".parquet")
			r, err := parquetread.Open(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
				os.Exit(1)
			}
			fmt.Printf("%s: %d rows\n", path, r.NumRows())
			fmt.Printf("  columns: %s\n", strings.Join(r.Columns(), ", "))
			r.Close()
		}
		return
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	// Alternate vintages across regions so a multi-region run crosses both
	// schemas.
	for idx, region := range regions {
		path := filepath.Join(dir, region+".parquet")
		vintage := "modern"
		if idx%2 == 0 {
			err = writeParquet(path, modernRows(*rows))
		} else {
			vintage = "legacy"
			err = writeParquet(path, legacyRows(*rows))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}

		// Read back through the same path the pipeline uses.
		r, err := parquetread.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  %-2s  %-6s  %2d columns, %d rows\n", region, vintage, len(r.Columns()), r.NumRows())
		r.Close()
	}

	// Count the injected drop classes once; the pattern is the same for
	// every region.
	var noCode, private, deactivated int
	for i := 0; i < *rows; i++ {
		s := makeSeed(i)
		switch {
		case s.code == 0:
			noCode++
		case s.governance == "S":
			private++
		case s.deactivated == "20190315":
			deactivated++
		}
	}
	fmt.Printf("Wrote %d regions under %s\n", len(regions), dir)
	fmt.Println("Each region includes:")
	fmt.Printf("  %-16s %d\n", "missing code", noCode)
	fmt.Printf("  %-16s %d\n", "private", private)
	fmt.Printf("  %-16s %d\n", "deactivated", deactivated)
	fmt.Println("Legacy regions omit the deactivation column, so their deactivated rows survive.")
}
