// Package parser converts raw OCR receipt text into a structured record.
// It is a pure function of its input apart from debug logging: no I/O, no
// shared mutable state, safe for concurrent use from any number of
// goroutines.
package parser

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/receipt-parser/constants"
	"github.com/joseph-ayodele/receipt-parser/internal/entity"
	"github.com/joseph-ayodele/receipt-parser/internal/ocr"
)

// Config holds behavior knobs for the parser.
type Config struct {
	Vocab  *Vocabulary
	Logger *slog.Logger
	Now    func() time.Time // clock for bank-transaction recency scoring
}

// Parser runs the multi-pass extraction. Build once with New and reuse.
type Parser struct {
	vocab  *Vocabulary
	logger *slog.Logger
	nowFn  func() time.Time
}

// New builds a Parser, filling zero-value config with defaults.
func New(cfg Config) *Parser {
	if cfg.Vocab == nil {
		cfg.Vocab = DefaultVocabulary()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Parser{vocab: cfg.Vocab, logger: cfg.Logger, nowFn: cfg.Now}
}

func (p *Parser) now() time.Time { return p.nowFn() }

// Parse converts one OCR document into a Receipt. It never fails: malformed
// or sparse input yields a record with nil/empty fields and zero confidence
// scores, never an error.
func (p *Parser) Parse(rawText string) *entity.Receipt {
	rec := &entity.Receipt{RawText: rawText}
	lines := ocr.Lines(rawText)
	if len(lines) == 0 {
		scoreConfidence(rec)
		return rec
	}

	if p.IsBankStatement(rawText, lines) {
		p.logger.Debug("parser.classified", "kind", "bank_statement", "lines", len(lines))
		merge(rec, p.parseBankStatement(lines))
		p.finalize(rec)
		scoreConfidence(rec)
		return rec
	}

	sections := p.Segment(lines)
	merge(rec, p.extractFromSections(sections))

	// Legacy single-pass fallback, triggered by exactly these three fields.
	// The trigger set is a tuned heuristic: date/phone/etc. going missing
	// does not warrant a re-parse. Already-populated fields always win.
	if rec.RestaurantName == "" || len(rec.Items) == 0 || rec.Total == nil {
		p.logger.Debug("parser.legacy_fallback",
			"have_name", rec.RestaurantName != "",
			"have_items", len(rec.Items) > 0,
			"have_total", rec.Total != nil)
		merge(rec, p.extractAll(lines, rec.RestaurantName))
	}

	p.finalize(rec)
	scoreConfidence(rec)
	return rec
}

// extractFromSections runs each section's extractors and returns the partial
// record of everything they found.
func (p *Parser) extractFromSections(sections map[constants.Section][]string) *entity.Receipt {
	rec := &entity.Receipt{}

	header := sections[constants.SectionHeader]
	rec.RestaurantName, rec.RestaurantLocationNumber = p.extractRestaurantName(header)
	rec.RestaurantAddress = p.extractAddress(header)
	rec.RestaurantPhone = p.extractPhone(header)
	rec.RestaurantWebsite = p.extractWebsite(append(append([]string{}, header...), sections[constants.SectionFooter]...))

	// order metadata and date/time drift between header and order_info
	info := append(append([]string{}, header...), sections[constants.SectionOrderInfo]...)
	rec.CheckNumber, rec.TableNumber, rec.ServerName, rec.CustomerName = p.extractOrderInfo(info)
	rec.Date = p.extractDate(info)
	rec.Time = p.extractTime(info)

	rec.Items = p.extractItems(sections[constants.SectionItems], rec.RestaurantName)

	totals := append(append([]string{}, sections[constants.SectionTotals]...), sections[constants.SectionPayment]...)
	a := p.extractAmounts(totals)
	rec.Subtotal, rec.Tax, rec.Tip, rec.Total = a.subtotal, a.tax, a.tip, a.total
	return rec
}

// extractAll is the legacy single-pass path: the same extractors applied to
// the whole line list instead of per-section windows.
func (p *Parser) extractAll(lines []string, knownName string) *entity.Receipt {
	rec := &entity.Receipt{}
	rec.RestaurantName, rec.RestaurantLocationNumber = p.extractRestaurantName(lines)
	rec.RestaurantAddress = p.extractAddress(lines)
	rec.RestaurantPhone = p.extractPhone(lines)
	rec.RestaurantWebsite = p.extractWebsite(lines)
	rec.CheckNumber, rec.TableNumber, rec.ServerName, rec.CustomerName = p.extractOrderInfo(lines)
	rec.Date = p.extractDate(lines)
	rec.Time = p.extractTime(lines)

	nameFilter := knownName
	if nameFilter == "" {
		nameFilter = rec.RestaurantName
	}
	rec.Items = p.extractItems(lines, nameFilter)

	a := p.extractAmounts(lines)
	rec.Subtotal, rec.Tax, rec.Tip, rec.Total = a.subtotal, a.tax, a.tip, a.total
	return rec
}

// merge combines passes left to right: a field already populated in dst is
// never overwritten by src.
func merge(dst, src *entity.Receipt) {
	if src == nil {
		return
	}
	mergeMoney := func(d **decimal.Decimal, s *decimal.Decimal) {
		if *d == nil && s != nil {
			*d = s
		}
	}
	mergeMoney(&dst.Amount, src.Amount)
	mergeMoney(&dst.Subtotal, src.Subtotal)
	mergeMoney(&dst.Tax, src.Tax)
	mergeMoney(&dst.Tip, src.Tip)
	mergeMoney(&dst.Total, src.Total)

	if dst.Date == nil {
		dst.Date = src.Date
	}
	mergeStr := func(d *string, s string) {
		if *d == "" {
			*d = s
		}
	}
	mergeStr(&dst.Time, src.Time)
	mergeStr(&dst.RestaurantName, src.RestaurantName)
	mergeStr(&dst.RestaurantLocationNumber, src.RestaurantLocationNumber)
	mergeStr(&dst.RestaurantAddress, src.RestaurantAddress)
	mergeStr(&dst.RestaurantPhone, src.RestaurantPhone)
	mergeStr(&dst.RestaurantWebsite, src.RestaurantWebsite)
	mergeStr(&dst.ServerName, src.ServerName)
	mergeStr(&dst.CustomerName, src.CustomerName)
	mergeStr(&dst.CheckNumber, src.CheckNumber)
	mergeStr(&dst.TableNumber, src.TableNumber)

	if len(dst.Items) == 0 {
		dst.Items = src.Items
	}
}

// finalize enforces output invariants: money rounded to exactly two decimal
// places, subtotal derived across merged passes, amount mirroring total,
// and the item cap.
func (p *Parser) finalize(rec *entity.Receipt) {
	a := amounts{subtotal: rec.Subtotal, tax: rec.Tax, tip: rec.Tip, total: rec.Total}
	deriveSubtotal(&a)
	rec.Subtotal = a.subtotal

	round := func(d *decimal.Decimal) *decimal.Decimal {
		if d == nil {
			return nil
		}
		r := d.Round(2)
		return &r
	}
	rec.Amount = round(rec.Amount)
	rec.Subtotal = round(rec.Subtotal)
	rec.Tax = round(rec.Tax)
	rec.Tip = round(rec.Tip)
	rec.Total = round(rec.Total)

	if rec.Amount == nil && rec.Total != nil {
		rec.Amount = rec.Total
	}
	if len(rec.Items) > maxItems {
		rec.Items = rec.Items[:maxItems]
	}
	for i := range rec.Items {
		rec.Items[i].Price = rec.Items[i].Price.Round(2)
		for j := range rec.Items[i].Modifiers {
			rec.Items[i].Modifiers[j].Price = rec.Items[i].Modifiers[j].Price.Round(2)
		}
	}
}
