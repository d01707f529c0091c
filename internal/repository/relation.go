package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

// linkTable describes a many-to-many join table keyed by (parent, child).
type linkTable struct {
	table        string
	parentColumn string
	childColumn  string
}

var (
	sessionStudents = linkTable{table: "eleves_programmations", parentColumn: "programmation_id", childColumn: "eleve_id"}
	payslipSessions = linkTable{table: "programmations_fiche_paies", parentColumn: "fiche_paie_id", childColumn: "programmation_id"}
	receiptCourses  = linkTable{table: "cours_recu_paiements", parentColumn: "recu_paiement_id", childColumn: "cours_id"}
)

type linkRow struct {
	ParentID string `db:"parent_id"`
	ChildID  string `db:"child_id"`
}

// expand returns the child ids linked to parentID ordered by child id.
func (l linkTable) expand(ctx context.Context, q sqlx.QueryerContext, parentID string) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s", l.childColumn, l.table, l.parentColumn, l.childColumn)
	ids := []string{}
	if err := sqlx.SelectContext(ctx, q, &ids, query, parentID); err != nil {
		return nil, fmt.Errorf("expand %s: %w", l.table, err)
	}
	return ids, nil
}

// expandAll loads the links of many parents in one query.
func (l linkTable) expandAll(ctx context.Context, q sqlx.QueryerContext, parentIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}
	query := fmt.Sprintf("SELECT %s AS parent_id, %s AS child_id FROM %s WHERE %s = ANY($1) ORDER BY %s, %s",
		l.parentColumn, l.childColumn, l.table, l.parentColumn, l.parentColumn, l.childColumn)
	var rows []linkRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, pq.Array(parentIDs)); err != nil {
		return nil, fmt.Errorf("expand %s: %w", l.table, err)
	}
	for _, row := range rows {
		out[row.ParentID] = append(out[row.ParentID], row.ChildID)
	}
	return out, nil
}

// setLinks writes the links of parentID, optionally replacing existing ones.
// It must run inside the caller's transaction.
func (l linkTable) setLinks(ctx context.Context, ext sqlx.ExtContext, parentID string, childIDs []string, replace bool) error {
	if replace {
		if err := l.deleteLinks(ctx, ext, parentID); err != nil {
			return err
		}
	}
	ids := models.UniqueIDs(childIDs)
	if len(ids) == 0 {
		return nil
	}
	query := fmt.Sprintf("INSERT INTO %s (%s, %s) SELECT $1, unnest($2::text[])", l.table, l.parentColumn, l.childColumn)
	if _, err := ext.ExecContext(ctx, query, parentID, pq.Array(ids)); err != nil {
		return writeError("link "+l.table, err)
	}
	return nil
}

// deleteLinks removes every link owned by parentID.
func (l linkTable) deleteLinks(ctx context.Context, ext sqlx.ExtContext, parentID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", l.table, l.parentColumn)
	if _, err := ext.ExecContext(ctx, query, parentID); err != nil {
		return fmt.Errorf("unlink %s: %w", l.table, err)
	}
	return nil
}

// deleteChildLinks removes every link pointing at childID.
func (l linkTable) deleteChildLinks(ctx context.Context, ext sqlx.ExtContext, childID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", l.table, l.childColumn)
	if _, err := ext.ExecContext(ctx, query, childID); err != nil {
		return fmt.Errorf("unlink %s: %w", l.table, err)
	}
	return nil
}

func linked(links map[string][]string, parentID string) []string {
	if ids, ok := links[parentID]; ok {
		return ids
	}
	return []string{}
}

// mustAffect returns sql.ErrNoRows when the statement touched nothing.
func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
