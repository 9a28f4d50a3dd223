package api

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benx421/card-authorizer/internal/models"
	"github.com/getkin/kin-openapi/openapi3"
)

const initialLineBuffer = 64 * 1024

type operationWire struct {
	Account     *models.AccountInput `json:"account"`
	Transaction *transactionWire     `json:"transaction"`
}

type transactionWire struct {
	Merchant string `json:"merchant"`
	Time     string `json:"time"`
	Amount   int64  `json:"amount"`
}

// Decoder reads one JSON operation per line. Blank lines are skipped.
type Decoder struct {
	scanner *bufio.Scanner
	schema  *openapi3.Schema
	line    int
}

// NewDecoder creates a Decoder reading from r. Lines longer than
// maxLineBytes fail the read.
func NewDecoder(r io.Reader, maxLineBytes int) (*Decoder, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	schema, err := LookupSchema(doc, SchemaOperation)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialLineBuffer, maxLineBytes)), maxLineBytes)

	return &Decoder{
		scanner: scanner,
		schema:  schema,
	}, nil
}

// Next returns the next operation, or io.EOF once the input is exhausted
func (d *Decoder) Next() (models.Operation, error) {
	for d.scanner.Scan() {
		d.line++

		raw := strings.TrimSpace(d.scanner.Text())
		if raw == "" {
			continue
		}

		return d.decodeLine(raw)
	}

	if err := d.scanner.Err(); err != nil {
		return models.Operation{}, fmt.Errorf("failed to read operations after line %d: %w", d.line, err)
	}

	return models.Operation{}, io.EOF
}

func (d *Decoder) decodeLine(raw string) (models.Operation, error) {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return models.Operation{}, d.fail(raw, fmt.Errorf("malformed json: %w", err))
	}

	if err := d.schema.VisitJSON(value); err != nil {
		return models.Operation{}, d.fail(raw, fmt.Errorf("schema validation failed: %w", err))
	}

	var wire operationWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return models.Operation{}, d.fail(raw, fmt.Errorf("failed to decode operation: %w", err))
	}

	op := models.Operation{
		Raw:  raw,
		Line: d.line,
	}

	switch {
	case wire.Account != nil:
		op.Kind = models.OperationKindAccount
		op.Account = wire.Account
	case wire.Transaction != nil:
		at, err := time.Parse(time.RFC3339, wire.Transaction.Time)
		if err != nil {
			return models.Operation{}, d.fail(raw, fmt.Errorf("invalid transaction time: %w", err))
		}
		tx := models.NewTransaction(wire.Transaction.Amount, wire.Transaction.Merchant, at.UTC())
		op.Kind = models.OperationKindTransaction
		op.Transaction = &tx
	default:
		return models.Operation{}, d.fail(raw, fmt.Errorf("unknown operation"))
	}

	return op, nil
}

func (d *Decoder) fail(raw string, err error) error {
	return &DecodeError{
		Line:  d.line,
		Input: raw,
		Err:   err,
	}
}
