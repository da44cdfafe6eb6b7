package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"stockpilot/pkg/logger"
	"stockpilot/pkg/storage"
)

// ErrNothingSelected is returned by bulk actions invoked with an empty
// selection.
var ErrNothingSelected = errors.New("no records selected")

// ExportSelected writes the selected products as a CSV file on disk and
// clears the selection, like every completed bulk action does. Returns the
// path written. Selected IDs that no longer resolve in the store are skipped.
func (s *InventoryService) ExportSelected(disk storage.Disk) (string, error) {
	ids := s.selection.IDs()
	if len(ids) == 0 {
		return "", ErrNothingSelected
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "sku", "category", "supplier", "current_stock", "reorder_point", "status"})
	exported := 0
	for _, id := range ids {
		p, ok := s.store.Get(id)
		if !ok {
			logger.Warn("export: selected id no longer in store, skipping", "id", id)
			continue
		}
		_ = w.Write([]string{
			string(p.ID), p.Name, p.SKU, p.Category, p.Supplier,
			strconv.Itoa(p.CurrentStock), strconv.Itoa(p.ReorderPoint), string(p.Status()),
		})
		exported++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: encode csv: %w", err)
	}

	path := fmt.Sprintf("exports/products-%s.csv", time.Now().Format("20060102-150405"))
	if err := disk.Put(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	logger.Info("export: wrote selected products", "path", path, "records", exported)
	s.selection.Clear()
	return path, nil
}
