package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/iris-platform/iris-go/pkg/client"
	"github.com/iris-platform/iris-go/pkg/jobs"
)

// Bloq is a knowledge base that agents retrieve from.
type Bloq struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DocumentCount int       `json:"document_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// BloqsService manages knowledge bases and their folder-ingestion jobs.
type BloqsService struct {
	client *client.Client
	logger hclog.Logger
	fs     afero.Fs
}

// List returns all bloqs.
func (s *BloqsService) List(ctx context.Context) ([]Bloq, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/bloqs", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	bloqs := make([]Bloq, 0, len(items))
	for _, item := range items {
		var bloq Bloq
		if err := decodeModel(item, &bloq); err != nil {
			return nil, err
		}
		bloqs = append(bloqs, bloq)
	}
	return bloqs, nil
}

// Get fetches a single bloq.
func (s *BloqsService) Get(ctx context.Context, id string) (*Bloq, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/bloqs/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	return bloqFromRaw(raw)
}

// Create registers a new bloq.
func (s *BloqsService) Create(ctx context.Context, name, description string) (*Bloq, error) {
	body := map[string]any{"name": name, "description": description}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/bloqs", body, &raw); err != nil {
		return nil, err
	}
	return bloqFromRaw(raw)
}

// IngestFolder uploads every regular file under dir to the bloq's staging
// folder, then asks the server to process the batch. It returns the ID of
// the server-side ingestion job; pass it to WaitForIngestion to block until
// the job finishes.
func (s *BloqsService) IngestFolder(ctx context.Context, bloqID, dir string) (string, error) {
	var files []string
	err := afero.Walk(s.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk folder %s: %w", dir, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("folder %s contains no files", dir)
	}

	uploadPath := fmt.Sprintf("%s/bloqs/%s/folder/files", apiPrefix, bloqID)
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			rel = filepath.Base(file)
		}
		s.logger.Debug("uploading folder file", "bloq_id", bloqID, "file", rel)
		fields := map[string]string{"relative_path": filepath.ToSlash(rel)}
		if err := s.client.Upload(ctx, uploadPath, file, fields, nil); err != nil {
			return "", fmt.Errorf("failed to upload %s: %w", rel, err)
		}
	}

	var raw json.RawMessage
	body := map[string]any{"file_count": len(files)}
	processPath := fmt.Sprintf("%s/bloqs/%s/folder/process", apiPrefix, bloqID)
	if err := s.client.Post(ctx, processPath, body, &raw); err != nil {
		return "", err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return "", err
	}
	jobID := stringID(obj["job_id"])
	if jobID == "" {
		return "", fmt.Errorf("ingestion response carried no job_id")
	}
	return jobID, nil
}

// IngestionStatus fetches the current snapshot of a folder ingestion job.
func (s *BloqsService) IngestionStatus(ctx context.Context, bloqID, jobID string) (*jobs.Status, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("%s/bloqs/%s/folder/jobs/%s", apiPrefix, bloqID, jobID)
	if err := s.client.Get(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	return jobs.DecodeStatus(obj)
}

// WaitForIngestion blocks until the ingestion job reaches a terminal state,
// polling IngestionStatus. See jobs.Poller.Wait for the terminal-state and
// timeout semantics.
func (s *BloqsService) WaitForIngestion(
	ctx context.Context,
	bloqID, jobID string,
	opts jobs.WaitOptions,
) (*jobs.Status, error) {
	poller := jobs.NewPoller(func(ctx context.Context, id string) (*jobs.Status, error) {
		return s.IngestionStatus(ctx, bloqID, id)
	}, s.logger)
	return poller.Wait(ctx, jobID, opts)
}

// CancelIngestion asks the server to stop an ingestion job. Fire-and-forget:
// it does not wait for the job to acknowledge the cancellation.
func (s *BloqsService) CancelIngestion(ctx context.Context, bloqID, jobID string) error {
	path := fmt.Sprintf("%s/bloqs/%s/folder/jobs/%s", apiPrefix, bloqID, jobID)
	return s.client.Delete(ctx, path, nil, nil)
}

func bloqFromRaw(raw json.RawMessage) (*Bloq, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var bloq Bloq
	if err := decodeModel(obj, &bloq); err != nil {
		return nil, err
	}
	return &bloq, nil
}
