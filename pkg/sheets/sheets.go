package sheets

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client talks to one worksheet of one Google spreadsheet. Reads run with
// the read-only scope, writes with the full spreadsheet scope; the service
// is built per call so each operation carries the narrowest credential.
type Client struct {
	credentialsFile string
	spreadsheetID   string
	sheetName       string
}

func NewClient(credentialsFile, spreadsheetID, sheetName string) *Client {
	return &Client{
		credentialsFile: credentialsFile,
		spreadsheetID:   spreadsheetID,
		sheetName:       sheetName,
	}
}

func (c *Client) service(ctx context.Context, write bool) (*sheets.Service, error) {
	scope := sheets.SpreadsheetsReadonlyScope
	if write {
		scope = sheets.SpreadsheetsScope
	}
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(c.credentialsFile),
		option.WithScopes(scope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return srv, nil
}

// withBackoff retries fn on Sheets rate-limit responses (429, 403) with
// capped exponential backoff. Any other error returns immediately.
func withBackoff(op string, fn func() error) error {
	maxRetries := 15
	maxBackoff := 60 * time.Second
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if gErr, ok := err.(*googleapi.Error); ok && (gErr.Code == 429 || gErr.Code == 403) {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			log.Printf("Rate limited by Google Sheets API during %s, retrying in %v...", op, backoff)
			time.Sleep(backoff)
			continue
		}
		return err
	}
	return fmt.Errorf("%s failed after %d retries: %w", op, maxRetries, err)
}

// ReadAll fetches the whole worksheet as strings, row 0 being the header
// row. Cells are returned raw; normalization happens in the registry.
func (c *Client) ReadAll() ([][]string, error) {
	ctx := context.Background()
	srv, err := c.service(ctx, false)
	if err != nil {
		return nil, err
	}

	var resp *sheets.ValueRange
	err = withBackoff("read", func() error {
		var err error
		resp, err = srv.Spreadsheets.Values.Get(
			c.spreadsheetID,
			c.sheetName,
		).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", c.sheetName, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// AppendRow adds one row at the end of the worksheet, in the given order.
func (c *Client) AppendRow(values []string) error {
	ctx := context.Background()
	srv, err := c.service(ctx, true)
	if err != nil {
		return err
	}

	err = withBackoff("append", func() error {
		_, err := srv.Spreadsheets.Values.Append(
			c.spreadsheetID,
			c.sheetName,
			&sheets.ValueRange{Values: toInterfaceRows(values)},
		).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	log.Debugf("Appended row to %s", c.sheetName)
	return nil
}

// UpdateRow overwrites the full width of the row at the given 1-based
// address: column A through the last column of values.
func (c *Client) UpdateRow(address int, values []string) error {
	ctx := context.Background()
	srv, err := c.service(ctx, true)
	if err != nil {
		return err
	}

	rng := fmt.Sprintf("%s!A%d:%s%d", c.sheetName, address, ColumnLetter(len(values)), address)
	err = withBackoff("update", func() error {
		_, err := srv.Spreadsheets.Values.Update(
			c.spreadsheetID,
			rng,
			&sheets.ValueRange{Values: toInterfaceRows(values)},
		).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("update row %d: %w", address, err)
	}
	log.Debugf("Updated row %d in %s", address, c.sheetName)
	return nil
}

func toInterfaceRows(values []string) [][]interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return [][]interface{}{row}
}
