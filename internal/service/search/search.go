// Package search runs free-text device search against the optional
// Elasticsearch index. It is a convenience on top of the catalog; the
// matching engine never depends on it.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/origintrace/marketplace/internal/models"
)

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Device, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "specs"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}

	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: elasticsearch status %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Device `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	devices := make([]models.Device, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		devices[i] = hit.Source
	}
	return r.Hits.Total.Value, devices, nil
}

// IndexDevice upserts the device document, keyed by its id.
func IndexDevice(ctx context.Context, es *elasticsearch.Client, index string, d *models.Device) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(fmt.Sprint(d.ID)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index device: elasticsearch status %s", res.Status())
	}
	return nil
}

// DeleteDevice removes the device document; a missing document is fine.
func DeleteDevice(ctx context.Context, es *elasticsearch.Client, index string, deviceID uint64) error {
	res, err := es.Delete(
		index,
		fmt.Sprint(deviceID),
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete device: elasticsearch status %s", res.Status())
	}
	return nil
}
