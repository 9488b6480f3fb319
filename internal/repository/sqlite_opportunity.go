package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// ErrNotFound indicates a lookup for an unknown opportunity id.
var ErrNotFound = fmt.Errorf("opportunity not found")

// SQLiteOpportunityRepo implements OpportunityRepo using a SQLite database.
type SQLiteOpportunityRepo struct {
	db *sql.DB
}

// NewSQLiteOpportunityRepo creates a new SQLiteOpportunityRepo.
func NewSQLiteOpportunityRepo(db *sql.DB) *SQLiteOpportunityRepo {
	return &SQLiteOpportunityRepo{db: db}
}

const opportunityColumns = `id, title, description, industry, geography, technology, owner,
	stage, scoring, detailed_scoring, business_case, analysis, gates, created_at, updated_at`

func (r *SQLiteOpportunityRepo) Save(ctx context.Context, o *domain.Opportunity) error {
	scoringJSON, err := json.Marshal(o.Scoring)
	if err != nil {
		return fmt.Errorf("encoding scoring: %w", err)
	}
	analysisJSON, err := json.Marshal(o.Analysis)
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	gates := o.Gates
	if gates == nil {
		gates = []domain.GateRecord{}
	}
	gatesJSON, err := json.Marshal(gates)
	if err != nil {
		return fmt.Errorf("encoding gates: %w", err)
	}

	var detailedJSON, businessJSON interface{}
	if o.Detailed != nil {
		b, err := json.Marshal(o.Detailed)
		if err != nil {
			return fmt.Errorf("encoding detailed scoring: %w", err)
		}
		detailedJSON = string(b)
	}
	if o.BusinessCase != nil {
		b, err := json.Marshal(o.BusinessCase)
		if err != nil {
			return fmt.Errorf("encoding business case: %w", err)
		}
		businessJSON = string(b)
	}

	query := `INSERT INTO opportunities (` + opportunityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			industry = excluded.industry,
			geography = excluded.geography,
			technology = excluded.technology,
			owner = excluded.owner,
			stage = excluded.stage,
			scoring = excluded.scoring,
			detailed_scoring = excluded.detailed_scoring,
			business_case = excluded.business_case,
			analysis = excluded.analysis,
			gates = excluded.gates,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		o.ID,
		o.Title,
		o.Description,
		o.Industry,
		o.Geography,
		o.Technology,
		o.Owner,
		string(o.Stage),
		string(scoringJSON),
		detailedJSON,
		businessJSON,
		string(analysisJSON),
		string(gatesJSON),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving opportunity: %w", err)
	}
	return nil
}

func (r *SQLiteOpportunityRepo) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	o, err := scanOpportunity(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return o, err
}

func (r *SQLiteOpportunityRepo) List(ctx context.Context) ([]*domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing opportunities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating opportunities: %w", err)
	}
	return out, nil
}

func (r *SQLiteOpportunityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM opportunities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting opportunity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting opportunity: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// scanOpportunity reads one row via the given scan function. Works for both
// *sql.Row and *sql.Rows.
func scanOpportunity(scan func(dest ...any) error) (*domain.Opportunity, error) {
	var o domain.Opportunity
	var stageStr, scoringStr, analysisStr, gatesStr string
	var createdAtStr, updatedAtStr string
	var detailedStr, businessStr sql.NullString

	err := scan(
		&o.ID, &o.Title, &o.Description, &o.Industry, &o.Geography, &o.Technology, &o.Owner,
		&stageStr, &scoringStr, &detailedStr, &businessStr, &analysisStr, &gatesStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning opportunity: %w", err)
	}

	o.Stage = domain.Stage(stageStr)

	if err := json.Unmarshal([]byte(scoringStr), &o.Scoring); err != nil {
		return nil, fmt.Errorf("decoding scoring: %w", err)
	}
	if err := json.Unmarshal([]byte(analysisStr), &o.Analysis); err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	if err := json.Unmarshal([]byte(gatesStr), &o.Gates); err != nil {
		return nil, fmt.Errorf("decoding gates: %w", err)
	}
	if detailedStr.Valid && detailedStr.String != "" {
		o.Detailed = &domain.DetailedScoring{}
		if err := json.Unmarshal([]byte(detailedStr.String), o.Detailed); err != nil {
			return nil, fmt.Errorf("decoding detailed scoring: %w", err)
		}
	}
	if businessStr.Valid && businessStr.String != "" {
		o.BusinessCase = &domain.BusinessCase{}
		if err := json.Unmarshal([]byte(businessStr.String), o.BusinessCase); err != nil {
			return nil, fmt.Errorf("decoding business case: %w", err)
		}
	}

	o.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	o.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &o, nil
}
