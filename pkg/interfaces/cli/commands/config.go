package commands

import (
	"errors"
	"fmt"
	"io"
)

// ErrCheckFailed is returned by the check command when the BOM has errors
var ErrCheckFailed = errors.New("BOM check failed")

// Config holds configuration for the CLI commands
type Config struct {
	MPNs         []string
	InputFile    string
	Column       string
	Manufacturer string
	BOMFile      string
	PolicyFile   string
	Format       string
	Workers      int
	Events       bool
	Verbose      bool
	Help         bool
}

// ShowHelp writes the usage message
func ShowHelp(w io.Writer) {
	fmt.Fprint(w, `MPN Engine CLI - Manufacturer Part Number Classification and BOM Checking

USAGE:
    mpn classify [options] <mpn>...        # Classify MPNs given as arguments
    mpn classify [options] -input <file>   # Classify a column of a CSV file
    mpn check [options] -bom <file>        # Check a BOM CSV file

OPTIONS:
    -input <file>       CSV file with MPNs (classify)
    -column <name>      Column holding MPNs, first column when empty (classify)
    -manufacturer <m>   Manufacturer hint applied to every MPN (classify)
    -bom <file>         BOM CSV file (check)
    -policy <file>      YAML BOM policy file (check)
    -format <fmt>       Output format: text, json, csv (default: text; csv is classify only)
    -workers <n>        Concurrent classifications (default: one per CPU)
    -metrics            Print collected metrics after the run
    -events             Print the check's event stream after the report (check)
    -verbose            Enable verbose output
    -help               Show this help message

ENVIRONMENT:
    MPN_LOG_LEVEL       debug, info, warn, error (default: info)
    MPN_LOG_FORMAT      json or console (default: json)
    MPN_WORKERS         default worker count
    MPN_POLICY_FILE     default BOM policy file
    MPN_MIN_SCORE       minimum alternate score

CSV FILE FORMATS:

bom.csv:
    parent_pn,mpn,manufacturer,qty_per,find_number,category,alternate_group,priority
    PCB-100,RC0603FR-0710KL,Yageo,4,10,resistor,R10K,0
    PCB-100,CRCW060310K0FKEA,Vishay,4,10,resistor,R10K,1

policy.yaml:
    required_categories: [resistor, capacitor]
    min_score: 0.75
    workers: 8
    fail_on_unknown: false

EXAMPLES:
    mpn classify RC0603FR-0710KL GRM188R71H104KA93D
    mpn classify -input parts.csv -column mpn -format json
    mpn check -bom bom.csv -policy policy.yaml -verbose
    mpn check -bom bom.csv -events
`)
}
