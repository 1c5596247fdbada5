package character

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

const charactersTable = "characters"

// characterRow mirrors the 'characters' table columns.
type characterRow struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name"`
	Race       string         `json:"race"`
	Class      string         `json:"class"`
	Background string         `json:"background"`
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	Appearance map[string]any `json:"appearance"`
	Equipment  []string       `json:"equipment"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// SupabaseStore persists characters in a Supabase 'characters' table.
type SupabaseStore struct {
	client *supa.Client
}

// NewSupabaseStore connects to Supabase with the given project URL and key.
func NewSupabaseStore(url, key string) (*SupabaseStore, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to supabase: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

func (s *SupabaseStore) List(_ context.Context) ([]Character, error) {
	var rows []characterRow
	_, err := s.client.From(charactersTable).Select("*", "exact", false).ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	out := make([]Character, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toCharacter())
	}
	return out, nil
}

func (s *SupabaseStore) Get(_ context.Context, id string) (Character, error) {
	var rows []characterRow
	_, err := s.client.From(charactersTable).Select("*", "exact", false).Eq("id", id).ExecuteTo(&rows)
	if err != nil {
		return Character{}, fmt.Errorf("failed to get character: %w", err)
	}
	if len(rows) == 0 {
		return Character{}, ErrNotFound
	}
	return rows[0].toCharacter(), nil
}

func (s *SupabaseStore) Create(_ context.Context, c Character) (Character, error) {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	var inserted []characterRow
	_, err := s.client.From(charactersTable).Insert(toRow(c), false, "", "", "").ExecuteTo(&inserted)
	if err != nil {
		return Character{}, fmt.Errorf("failed to create character: %w", err)
	}
	if len(inserted) > 0 {
		return inserted[0].toCharacter(), nil
	}
	return c, nil
}

func (s *SupabaseStore) Update(ctx context.Context, id string, c Character) (Character, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Character{}, err
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	var updated []characterRow
	_, err = s.client.From(charactersTable).Update(toRow(c), "", "").Eq("id", id).ExecuteTo(&updated)
	if err != nil {
		return Character{}, fmt.Errorf("failed to update character: %w", err)
	}
	if len(updated) > 0 {
		return updated[0].toCharacter(), nil
	}
	return c, nil
}

func (s *SupabaseStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	var deleted []characterRow
	_, err := s.client.From(charactersTable).Delete("", "").Eq("id", id).ExecuteTo(&deleted)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

func toRow(c Character) characterRow {
	return characterRow{
		ID:         c.ID,
		Name:       c.Name,
		Race:       c.Race,
		Class:      c.Class,
		Background: c.Background,
		Attributes: c.Attributes,
		Skills:     c.Skills,
		Appearance: c.Appearance,
		Equipment:  c.Equipment,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r characterRow) toCharacter() Character {
	return Character{
		ID:         r.ID,
		Name:       r.Name,
		Race:       r.Race,
		Class:      r.Class,
		Background: r.Background,
		Attributes: r.Attributes,
		Skills:     r.Skills,
		Appearance: r.Appearance,
		Equipment:  r.Equipment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
