// Package scheduler registra tareas periódicas sobre el catálogo con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

// Parser acepta segundos opcionales y descriptores (@every 1m, @hourly...).
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// PartLister fuente del snapshot del catálogo.
type PartLister interface {
	List(ctx context.Context) ([]entity.Part, error)
}

// LowStockJob recorre el catálogo y registra en el log los repuestos con stock bajo.
type LowStockJob struct {
	parts   PartLister
	log     zerolog.Logger
	timeout time.Duration
}

// NewLowStockJob construye la tarea.
func NewLowStockJob(parts PartLister, log zerolog.Logger) *LowStockJob {
	return &LowStockJob{
		parts:   parts,
		log:     log.With().Str("job", "low_stock").Logger(),
		timeout: 30 * time.Second,
	}
}

// Run implementa cron.Job.
func (j *LowStockJob) Run() {
	defer func() {
		if r := recover(); r != nil {
			j.log.Error().Interface("panic", r).Msg("tarea de stock bajo abortada")
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	if _, err := j.Check(ctx); err != nil {
		j.log.Error().Err(err).Msg("revisar stock bajo")
	}
}

// Check devuelve los repuestos con stock bajo y los registra uno por uno.
func (j *LowStockJob) Check(ctx context.Context) ([]entity.Part, error) {
	parts, err := j.parts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar repuestos: %w", err)
	}
	low := make([]entity.Part, 0)
	for i := range parts {
		p := &parts[i]
		if !domaininv.IsLowStock(p) {
			continue
		}
		low = append(low, *p)
		j.log.Warn().
			Str("part_id", p.ID).
			Str("part_number", p.PartNumber).
			Int("stock", p.StockQuantity).
			Msg("stock bajo")
	}
	j.log.Info().Int("total", len(parts)).Int("low_stock", len(low)).Msg("revisión de stock completada")
	return low, nil
}

// Scheduler envoltorio de cron.Cron con las tareas del catálogo.
type Scheduler struct {
	cron *cron.Cron
}

// New construye un scheduler en UTC.
func New() *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(time.UTC), cron.WithParser(cronParser))}
}

// Register agrega la tarea con la expresión indicada. Una expresión vacía no registra nada.
func (s *Scheduler) Register(spec string, job cron.Job) error {
	if spec == "" {
		return nil
	}
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("scheduler: expresión %q: %w", spec, err)
	}
	return nil
}

// Entries cantidad de tareas registradas.
func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }

// Start arranca el scheduler en su propia goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop detiene el scheduler y espera a que terminen las tareas en curso o venza ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
