package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ReddyVikranth/Contract-Intelligence-Parser/config"
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/parser"
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/pkg/pdf"
)

// ObjectStorage is the slice of object storage the processor needs.
type ObjectStorage interface {
	GetFile(ctx context.Context, objectName string) ([]byte, error)
}

// Processor runs contract extraction jobs on a background worker pool.
// Each uploaded contract is enqueued once and driven to exactly one terminal
// status (completed or failed). Progress percentages are written around the
// pipeline sub-stages as a coarse observability signal.
type Processor struct {
	store   *ContractStore
	storage ObjectStorage
	parser  *parser.Parser
	jobs    chan string
	workers int
	wg      sync.WaitGroup
}

func NewProcessor(store *ContractStore, storage ObjectStorage, cfg *config.WorkerConfig) *Processor {
	return &Processor{
		store:   store,
		storage: storage,
		parser:  parser.New(),
		jobs:    make(chan string, cfg.QueueSize),
		workers: cfg.Count,
	}
}

// Start launches the worker pool. Workers exit when ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func(worker int) {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case contractID := <-p.jobs:
					p.process(ctx, contractID)
				}
			}
		}(i)
	}
	slog.Info("contract processor started", "workers", p.workers, "queue_size", cap(p.jobs))
}

// Stop waits for in-flight jobs to finish. Call after cancelling the Start
// context.
func (p *Processor) Stop() {
	p.wg.Wait()
}

// Enqueue submits a contract for processing. Returns an error when the
// queue is full rather than blocking the upload request.
func (p *Processor) Enqueue(contractID string) error {
	select {
	case p.jobs <- contractID:
		return nil
	default:
		return fmt.Errorf("processing queue is full")
	}
}

// process drives one contract through decode, extraction, scoring and gap
// analysis, updating progress at each milestone.
func (p *Processor) process(ctx context.Context, contractID string) {
	contract := p.store.Get(contractID)
	if contract == nil {
		slog.Error("contract vanished before processing", "contract_id", contractID)
		return
	}

	log := slog.With("contract_id", contractID, "filename", contract.Filename)

	if err := p.store.UpdateStatus(contractID, model.StatusProcessing, 10, ""); err != nil {
		log.Error("failed to mark contract processing", "error", err)
		return
	}

	data, err := p.storage.GetFile(ctx, contract.ObjectName)
	if err != nil {
		log.Error("failed to fetch stored file", "error", err)
		p.fail(contractID, "Failed to fetch stored file: "+err.Error())
		return
	}
	p.progress(contractID, 30)

	// Corrupt PDFs fail the job; a decodable PDF with no text is valid
	// input and flows through as an all-empty extraction.
	text, err := pdf.ExtractText(data)
	if err != nil {
		log.Error("failed to extract text from PDF", "error", err)
		p.fail(contractID, "Failed to extract text from PDF: "+err.Error())
		return
	}
	p.progress(contractID, 50)

	extracted := p.parser.Parse(text)
	p.progress(contractID, 70)

	scores := parser.Score(extracted)
	gaps := parser.AnalyzeGaps(extracted)
	p.progress(contractID, 90)

	if err := p.store.UpdateResults(contractID, extracted, scores, gaps); err != nil {
		log.Error("failed to persist results", "error", err)
		return
	}

	log.Info("contract processed",
		"overall_score", scores.OverallScore,
		"missing_fields", len(gaps.MissingFields),
	)
}

func (p *Processor) progress(contractID string, percentage int) {
	if err := p.store.UpdateStatus(contractID, model.StatusProcessing, percentage, ""); err != nil {
		slog.Error("failed to update progress", "contract_id", contractID, "error", err)
	}
}

func (p *Processor) fail(contractID, msg string) {
	if err := p.store.UpdateStatus(contractID, model.StatusFailed, 0, msg); err != nil {
		slog.Error("failed to mark contract failed", "contract_id", contractID, "error", err)
	}
}
