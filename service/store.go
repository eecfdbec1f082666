package service

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ReddyVikranth/Contract-Intelligence-Parser/config"
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
)

// ContractStore is an in-memory document store for contracts.
// In production, this should be replaced with a database.
type ContractStore struct {
	contracts    map[string]*model.Contract
	mu           sync.RWMutex
	maxContracts int // Maximum contracts to keep, 0 = unlimited
}

// NewContractStore creates a contract store with the configured retention cap.
func NewContractStore(cfg *config.StoreConfig) *ContractStore {
	maxContracts := cfg.MaxContracts
	if maxContracts < 0 {
		maxContracts = 0
	}
	slog.Info("contract store initialized", "max_contracts", maxContracts)
	return &ContractStore{
		contracts:    make(map[string]*model.Contract),
		maxContracts: maxContracts,
	}
}

func (s *ContractStore) Save(contract *model.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract.UpdatedAt = time.Now()
	s.contracts[contract.ID] = contract

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

func (s *ContractStore) Get(id string) *model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contracts[id]
}

// List returns one page of a tenant's contracts, newest first, optionally
// filtered by status, along with the total count before paging.
func (s *ContractStore) List(tenant string, page, pageSize int, status string) ([]*model.Contract, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []*model.Contract
	for _, c := range s.contracts {
		if c.Tenant != tenant {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := (page - 1) * pageSize
	if start >= total {
		return []*model.Contract{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

func (s *ContractStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contracts, id)
}

// UpdateStatus sets status, progress and error message for a contract.
// Returns an error if the contract does not exist, so job workers can
// surface persistence failures instead of silently losing updates.
func (s *ContractStore) UpdateStatus(id, status string, progress int, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[id]
	if !ok {
		return fmt.Errorf("contract %s not found", id)
	}
	c.Status = status
	c.ProgressPercentage = progress
	c.ErrorMessage = errMsg
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateResults stores the pipeline output and marks the contract completed.
func (s *ContractStore) UpdateResults(id string, data *model.ExtractedData, scores *model.ConfidenceScores, gaps *model.GapAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[id]
	if !ok {
		return fmt.Errorf("contract %s not found", id)
	}
	c.ExtractedData = data
	c.ConfidenceScores = scores
	c.GapAnalysis = gaps
	c.Status = model.StatusCompleted
	c.ProgressPercentage = 100
	c.ErrorMessage = ""
	c.UpdatedAt = time.Now()
	return nil
}

// cleanupIfNeeded removes oldest contracts if store exceeds maxContracts
// Must be called with lock held
func (s *ContractStore) cleanupIfNeeded() {
	if s.maxContracts <= 0 {
		return // Unlimited
	}

	if len(s.contracts) <= s.maxContracts {
		return
	}

	// Sort contracts by creation time
	contracts := make([]*model.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.Before(contracts[j].CreatedAt)
	})

	// Remove oldest contracts
	removeCount := len(contracts) - s.maxContracts
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old contract",
			"contract_id", contracts[i].ID,
			"created_at", contracts[i].CreatedAt,
		)
		delete(s.contracts, contracts[i].ID)
	}
}

// Count returns the number of contracts in the store
func (s *ContractStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}
