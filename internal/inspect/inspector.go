package inspect

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/recordlens/recordlens/internal/model"
	"github.com/recordlens/recordlens/internal/schema"
)

// OpenFunc resolves a named connection to a schema reader. It returns
// schema.ErrDriverUnavailable (possibly wrapped) when the host lacks the
// capability to introspect that connection.
type OpenFunc func(connection string) (schema.Reader, error)

// Inspector assembles model descriptions. Construction is cheap; one
// inspector serves any number of Describe calls.
type Inspector struct {
	registry *model.Registry
	open     OpenFunc
	logger   *zap.Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger attaches a logger for engine diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(i *Inspector) { i.logger = logger }
}

// New creates an inspector over a model registry and a connection opener.
func New(registry *model.Registry, open OpenFunc, opts ...Option) *Inspector {
	i := &Inspector{
		registry: registry,
		open:     open,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Describe resolves a model, reads its table's columns, and assembles
// the full description. database, when non-empty, overrides the model's
// connection unless the table name is already connection-qualified.
// Assembly is all-or-nothing: any failure yields a nil description.
func (i *Inspector) Describe(ctx context.Context, identifier, database string) (*ModelDescription, error) {
	entry, err := i.registry.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	mc, err := newModelContext(entry)
	if err != nil {
		return nil, err
	}

	table := model.TableFor(mc.instance)
	connection := model.ConnectionFor(mc.instance)
	if database != "" && database != connection && !strings.Contains(table, ".") {
		connection = database
	}

	i.logger.Debug("resolved model",
		zap.String("model", entry.Qualified),
		zap.String("table", table),
		zap.String("connection", connection),
		zap.Int("declared_methods", len(mc.methods)))

	reader, err := i.open(connection)
	if err != nil {
		return nil, err
	}
	columns, err := reader.Columns(ctx, table)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(columns))
	attributes := make([]AttributeRecord, 0, len(columns))
	for _, col := range columns {
		known[col.Name] = true
		attributes = append(attributes, columnAttribute(col, mc))
	}

	virtuals := virtualAttributes(mc, known)
	i.logger.Debug("discovered attributes",
		zap.Int("columns", len(columns)),
		zap.Int("virtual", len(virtuals)))
	attributes = append(attributes, virtuals...)

	relations, err := relationRecords(mc)
	if err != nil {
		return nil, err
	}
	i.logger.Debug("classified relationships", zap.Int("count", len(relations)))

	return &ModelDescription{
		Class:      entry.Qualified,
		Connection: connection,
		Table:      table,
		Attributes: attributes,
		Relations:  relations,
	}, nil
}
