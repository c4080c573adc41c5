package common

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema names under schemas/.
const (
	ProviderSchema = "provider"
	CategorySchema = "category"
	MenuItemSchema = "menu_item"
)

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*gojsonschema.Schema{}
)

func loadSchema(name string) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if s, ok := schemaCache[name]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	schemaCache[name] = s
	return s, nil
}

// ValidateBody checks body against the named schema. Contract violations
// wrap admindomain.ErrInvalid.
func ValidateBody(name string, body []byte) error {
	schema, err := loadSchema(name)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: malformed JSON body", admindomain.ErrInvalid)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", admindomain.ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// DecodeBody reads a size-limited body, validates it against the named
// schema and decodes it into dst.
func DecodeBody(r *http.Request, name string, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBody+1))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", admindomain.ErrInvalid, err)
	}
	if len(body) > MaxRequestBody {
		return fmt.Errorf("%w: request body too large", admindomain.ErrInvalid)
	}
	if err := ValidateBody(name, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", admindomain.ErrInvalid, err)
	}
	return nil
}
