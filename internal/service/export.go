package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var personCSVHeader = []string{
	"ID", "Name", "Email", "DateOfBirth", "Age", "Gender", "Country", "Address", "ReceiveNewsletters",
}

// WritePersonsCSV writes every person as CSV to w, header row first, in
// insertion order.
func (s *PersonServiceImpl) WritePersonsCSV(ctx context.Context, w io.Writer) error {
	defer s.metrics.ObserveQuery("export_csv", time.Now())

	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(personCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range persons {
		if err := cw.Write(personCSVRecord(&persons[i])); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	s.logger.Debug("persons exported as csv", "count", len(persons))
	return nil
}

func personCSVRecord(p *PersonResponse) []string {
	var dob, age string
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(time.DateOnly)
	}
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	return []string{
		p.ID.String(),
		p.Name,
		p.Email,
		dob,
		age,
		string(p.Gender),
		p.Country,
		p.Address,
		strconv.FormatBool(p.ReceiveNewsletters),
	}
}
