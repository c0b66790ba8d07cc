// Package catalog seeds the policy table from the insurance plans CSV.
package catalog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"

	"gorm.io/datatypes"
)

const defaultCompanyName = "xAI Insurance"

// PolicyStore is the slice of the policy repository the importer needs.
type PolicyStore interface {
	Save(ctx context.Context, policy *domain.Policy) error
	CountAll(ctx context.Context) (int64, error)
}

type Importer struct {
	store PolicyStore
}

func NewImporter(store PolicyStore) *Importer {
	return &Importer{store: store}
}

// Seed loads the CSV at path into the policy table. It is a no-op when the
// table already has rows, so restarts do not duplicate the catalog. Rows
// missing a name or premium are skipped; a missing type defaults to premium.
func (i *Importer) Seed(ctx context.Context, path string) (int, error) {
	existing, err := i.store.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		logger.Info("Policy catalog already seeded", "policies", existing)
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog header: %w", err)
	}

	columns := map[string]int{}
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}
	for _, required := range []string{"name", "type", "premium", "coverageLimits"} {
		if _, ok := columns[required]; !ok {
			return 0, fmt.Errorf("catalog missing required column %q", required)
		}
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("Skipping unreadable catalog row", "error", err.Error())
			continue
		}

		policy, err := parseRow(columns, record)
		if err != nil {
			logger.Warn("Skipping invalid catalog row", "error", err.Error())
			continue
		}

		if err := i.store.Save(ctx, &policy); err != nil {
			return imported, err
		}
		imported++
	}

	logger.Info("Policy catalog seeded", "policies", imported)
	return imported, nil
}

func parseRow(columns map[string]int, record []string) (domain.Policy, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := field("name")
	if name == "" {
		return domain.Policy{}, errors.New("missing name")
	}

	premium, err := strconv.ParseFloat(field("premium"), 64)
	if err != nil {
		return domain.Policy{}, fmt.Errorf("invalid premium: %w", err)
	}

	policyType := field("type")
	if policyType == "" {
		policyType = domain.PolicyTypePremium
	}

	limits, err := parseCoverageLimits(field("coverageLimits"))
	if err != nil {
		return domain.Policy{}, fmt.Errorf("invalid coverageLimits: %w", err)
	}

	companyName := field("company_name")
	if companyName == "" {
		companyName = defaultCompanyName
	}

	return domain.Policy{
		Name:           name,
		Type:           policyType,
		Premium:        premium,
		CoverageLimits: limits,
		CompanyName:    companyName,
		Description:    field("description"),
		Status:         "active",
	}, nil
}

// parseCoverageLimits accepts JSON, plus the single-quoted dict style the
// source dataset uses.
func parseCoverageLimits(raw string) (datatypes.JSONMap, error) {
	if raw == "" {
		return datatypes.JSONMap{}, nil
	}

	normalized := strings.ReplaceAll(raw, "'", `"`)

	var limits map[string]interface{}
	if err := json.Unmarshal([]byte(normalized), &limits); err != nil {
		return nil, err
	}

	return datatypes.JSONMap(limits), nil
}
