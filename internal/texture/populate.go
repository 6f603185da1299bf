package texture

import (
	"log"

	"github.com/ytget/cloudshot/internal/model"
	"github.com/ytget/cloudshot/internal/platform"
)

// Skipped records a capture that did not make it into the cache
type Skipped struct {
	Key string
	Err error
}

// PopulateResult summarises a startup population pass
type PopulateResult struct {
	Registered []string
	Skipped    []Skipped
}

// Populate decodes every record's backing file with load and registers the
// successes under the record's display name, then freezes the cache.
// Failures are logged and skipped; they never stop the remaining records.
func Populate(c *Cache, records []model.CaptureRecord, load platform.Loader) PopulateResult {
	var res PopulateResult

	for _, record := range records {
		buf, err := load(record.SourcePath)
		if err != nil {
			log.Printf("Skipping capture %q: %v", record.DisplayName, err)
			res.Skipped = append(res.Skipped, Skipped{Key: record.DisplayName, Err: err})
			continue
		}

		handle, err := c.Register(record.DisplayName, buf)
		if err != nil {
			log.Printf("Skipping capture %q: %v", record.DisplayName, err)
			res.Skipped = append(res.Skipped, Skipped{Key: record.DisplayName, Err: err})
			continue
		}

		log.Printf("Loaded capture %q: %dx%d, handle=%s",
			record.DisplayName, buf.Width, buf.Height, handle.ID)
		res.Registered = append(res.Registered, record.DisplayName)
	}

	c.Freeze()
	log.Printf("Texture cache populated: %d loaded, %d skipped", len(res.Registered), len(res.Skipped))
	return res
}
