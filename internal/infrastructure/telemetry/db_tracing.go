package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/gorm"
)

// RegisterDBTracing instruments a GORM connection with otelgorm so repository
// queries show up as child spans of the surrounding service spans. Query
// variables are always excluded from spans: statements against daily_summaries
// and vendor_payments carry settlement amounts.
func RegisterDBTracing(db *gorm.DB, dbName string) error {
	return db.Use(otelgorm.NewPlugin(
		otelgorm.WithDBName(dbName),
		otelgorm.WithoutQueryVariables(),
	))
}
