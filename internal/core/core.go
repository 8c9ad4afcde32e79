// Package core ties the catalog, renderer, form rules, record store and export
// together for the CLI and the TUI.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/config"
	"github.com/cristianoliveira/noshow/internal/dedup"
	"github.com/cristianoliveira/noshow/internal/dedupconfig"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/export"
	"github.com/cristianoliveira/noshow/internal/form"
	"github.com/cristianoliveira/noshow/internal/logging"
	"github.com/cristianoliveira/noshow/internal/mask"
	"github.com/cristianoliveira/noshow/internal/storage"
	"github.com/cristianoliveira/noshow/internal/token"
	"github.com/cristianoliveira/noshow/internal/version"
)

// ErrNoStore is returned by record operations when the core was built without a store.
var ErrNoStore = errors.New("no record store configured")

// Options configures a Core. Zero values pick the defaults: built-in
// synonyms and catalog, the keep policy, no store and time.Now.
// OpenStore, when Store is nil, opens the store on the first record operation.
type Options struct {
	Normalizer *token.Normalizer
	Catalog    *catalog.Catalog
	Policy     mask.Policy
	Store      storage.Store
	OpenStore  func() (storage.Store, error)
	Now        func() time.Time
	Dedup      dedup.Options
}

// Core is the application service behind every command.
type Core struct {
	normalizer *token.Normalizer
	catalog    *catalog.Catalog
	renderer   *mask.Renderer
	now        func() time.Time
	dedup      dedup.Options

	storeOnce sync.Once
	store     storage.Store
	storeErr  error
	openStore func() (storage.Store, error)
}

// New builds a Core from opts.
func New(opts Options) *Core {
	n := opts.Normalizer
	if n == nil {
		n = token.NewNormalizer(token.DefaultSynonyms())
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin(n)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Core{
		normalizer: n,
		catalog:    cat,
		renderer:   mask.NewRenderer(n, mask.WithPolicy(opts.Policy)),
		now:        now,
		dedup:      opts.Dedup,
		store:      opts.Store,
		openStore:  opts.OpenStore,
	}
}

// NewFromConfig builds a Core from the global configuration: catalog_path (or
// the built-in catalog), unresolved_policy and the record store at db_path.
// The store is opened lazily, so commands that never touch records never
// create the database.
func NewFromConfig() (*Core, error) {
	config.Load()

	n := token.NewNormalizer(token.DefaultSynonyms())

	cat := catalog.Builtin(n)
	if path := strings.TrimSpace(config.Get("catalog_path", "")); path != "" {
		loaded, err := catalog.LoadFile(path, n)
		if err != nil {
			return nil, fmt.Errorf("core: load catalog: %w", err)
		}
		colors.Debug(fmt.Sprintf("loaded %d reasons from %s", loaded.Len(), path))
		cat = loaded
	}

	policy, err := mask.ParsePolicy(config.Get("unresolved_policy", string(mask.PolicyKeep)))
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}

	return New(Options{
		Normalizer: n,
		Catalog:    cat,
		Policy:     policy,
		OpenStore:  storage.NewFromConfig,
		Dedup:      dedupconfig.Load(),
	}), nil
}

func (c *Core) recordStore() (storage.Store, error) {
	c.storeOnce.Do(func() {
		if c.store != nil || c.openStore == nil {
			return
		}
		c.store, c.storeErr = c.openStore()
	})
	if c.storeErr != nil {
		return nil, fmt.Errorf("core: %w", c.storeErr)
	}
	if c.store == nil {
		return nil, ErrNoStore
	}
	return c.store, nil
}

// Close releases the record store if it was opened.
func (c *Core) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Reasons returns every catalog entry in display order.
func (c *Core) Reasons() []catalog.ReasonEntry {
	return c.catalog.Entries()
}

// Reason looks up an entry by ID or title.
func (c *Core) Reason(idOrTitle string) (catalog.ReasonEntry, error) {
	return c.catalog.Get(idOrTitle)
}

// Selection resolves a reason and one of its variants; an empty variant picks the first.
func (c *Core) Selection(idOrTitle, variantID string) (catalog.ReasonEntry, catalog.TemplateVariant, error) {
	entry, err := c.catalog.Get(idOrTitle)
	if err != nil {
		return catalog.ReasonEntry{}, catalog.TemplateVariant{}, err
	}
	variant, err := entry.Variant(variantID)
	if err != nil {
		return catalog.ReasonEntry{}, catalog.TemplateVariant{}, err
	}
	return entry, variant, nil
}

// Policy reports how unresolved tokens are rendered.
func (c *Core) Policy() mask.Policy {
	return c.renderer.Policy()
}

// Normalize maps a raw token spelling to its canonical key.
func (c *Core) Normalize(raw string) token.Key {
	return c.normalizer.Normalize(raw)
}

// BuildValues pairs positional inputs with the reason's fields.
func (c *Core) BuildValues(entry catalog.ReasonEntry, inputs []string) mask.ValueMap {
	return form.BuildValues(entry, inputs)
}

// ParseValues reads key=value pairs for the reason's fields.
func (c *Core) ParseValues(entry catalog.ReasonEntry, pairs []string) (mask.ValueMap, error) {
	return form.ParseAssignments(entry, c.normalizer, pairs)
}

// Preview is a rendered justification with the checks that would block submission.
type Preview struct {
	Entry      catalog.ReasonEntry
	Variant    catalog.TemplateVariant
	Values     mask.ValueMap
	Text       string
	Warnings   []form.Warning
	Unresolved []string
}

// Ready reports whether nothing blocks submission.
func (p Preview) Ready() bool {
	return len(p.Warnings) == 0
}

// Preview renders the chosen variant. Missing required fields are reported
// but never prevent rendering.
func (c *Core) Preview(idOrTitle, variantID string, values mask.ValueMap) (Preview, error) {
	entry, variant, err := c.Selection(idOrTitle, variantID)
	if err != nil {
		return Preview{}, err
	}
	return c.preview(entry, variant, values), nil
}

func (c *Core) preview(entry catalog.ReasonEntry, variant catalog.TemplateVariant, values mask.ValueMap) Preview {
	if values == nil {
		values = form.BuildValues(entry, nil)
	}
	p := Preview{
		Entry:    entry,
		Variant:  variant,
		Values:   values,
		Text:     c.renderer.Render(variant.Template, values),
		Warnings: form.Validate(entry, variant, values),
	}
	for _, raw := range mask.Tokens(variant.Template) {
		if c.renderer.Resolve(raw, values).Kind == mask.Unresolved {
			p.Unresolved = append(p.Unresolved, raw)
		}
	}
	return p
}

// TokenTrace explains how one bracketed token was resolved.
type TokenTrace struct {
	Resolution mask.Resolution
	Steps      []mask.Step
}

// Explain traces every token of the chosen variant against values.
func (c *Core) Explain(idOrTitle, variantID string, values mask.ValueMap) ([]TokenTrace, error) {
	_, variant, err := c.Selection(idOrTitle, variantID)
	if err != nil {
		return nil, err
	}
	var traces []TokenTrace
	for _, raw := range mask.Tokens(variant.Template) {
		res, steps := c.renderer.Trace(raw, values)
		traces = append(traces, TokenTrace{Resolution: res, Steps: steps})
	}
	return traces, nil
}

// Submit renders, validates and stores a justification. A non-blank override
// replaces the rendered text, the way an operator edits the final text by hand.
// Missing required fields yield a *form.MissingFieldsError and nothing is stored.
func (c *Core) Submit(ctx context.Context, idOrTitle, variantID string, values mask.ValueMap, override string) (domain.Record, error) {
	entry, variant, err := c.Selection(idOrTitle, variantID)
	if err != nil {
		return domain.Record{}, err
	}
	p := c.preview(entry, variant, values)
	if !p.Ready() {
		return domain.Record{}, &form.MissingFieldsError{Warnings: p.Warnings}
	}
	store, err := c.recordStore()
	if err != nil {
		return domain.Record{}, err
	}

	text := p.Text
	if strings.TrimSpace(override) != "" {
		text = strings.TrimSpace(override)
	}

	keys := entry.EffectiveKeys()
	fields := make([]domain.FieldValue, len(entry.Fields))
	for i, f := range entry.Fields {
		fields[i] = domain.FieldValue{Label: f.Label, Key: keys[i], Value: p.Values.Get(keys[i])}
	}

	record := domain.Record{
		CreatedAt:    c.now(),
		ReasonID:     entry.ID,
		ReasonTitle:  entry.Title,
		VariantLabel: variant.Label,
		Action:       entry.Action,
		Usage:        entry.Usage,
		Text:         text,
		Fields:       fields,
	}
	id, err := store.Add(ctx, record)
	if err != nil {
		return domain.Record{}, fmt.Errorf("core: submit: %w", err)
	}
	record.ID = id

	logging.Info("record added", "id", id, "reason", entry.ID, "variant", variant.ID, "edited", text != p.Text)
	return record, nil
}

// Records lists the collected records.
func (c *Core) Records(ctx context.Context) ([]domain.Record, error) {
	store, err := c.recordStore()
	if err != nil {
		return nil, err
	}
	return store.List(ctx)
}

// DeleteRecord removes one collected record.
func (c *Core) DeleteRecord(ctx context.Context, id int64) error {
	store, err := c.recordStore()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	logging.Info("record deleted", "id", id)
	return nil
}

// Duplicates groups the collected records that repeat the same justification.
func (c *Core) Duplicates(ctx context.Context) ([][]domain.Record, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}
	return dedup.Groups(records, c.dedup), nil
}

// DuplicatesOf returns the other collected records that repeat record.
func (c *Core) DuplicatesOf(ctx context.Context, record domain.Record) ([]domain.Record, error) {
	groups, err := c.Duplicates(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		for i, r := range g {
			if r.ID != record.ID {
				continue
			}
			others := make([]domain.Record, 0, len(g)-1)
			others = append(others, g[:i]...)
			return append(others, g[i+1:]...), nil
		}
	}
	return nil, nil
}

// Export writes every collected record into dir and returns the file path and
// the format actually written.
func (c *Core) Export(ctx context.Context, format export.Format, dir string) (string, export.Format, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return "", "", err
	}
	path, used, err := export.ToFile(dir, format, records, c.now())
	if err != nil {
		return "", "", err
	}
	logging.Info("records exported", "path", path, "format", string(used), "count", len(records))
	return path, used, nil
}

// Reset starts a new consultation by dropping every collected record.
func (c *Core) Reset(ctx context.Context) (int, error) {
	store, err := c.recordStore()
	if err != nil {
		return 0, err
	}
	n, err := store.Clear(ctx)
	if err != nil {
		return 0, err
	}
	logging.Info("records cleared", "count", n)
	return n, nil
}

// Lint checks every catalog template against its fields.
func (c *Core) Lint() []catalog.Issue {
	return catalog.LintCatalog(c.catalog, c.normalizer)
}

// Version returns the build version string.
func (c *Core) Version() string {
	return version.String()
}
