package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BuildAddress renders the display address in the Brazilian convention:
// "Rua X, 123 - Bairro, Cidade/UF". Empty parts drop out together with
// their separators.
func BuildAddress(street, number, district, city, state string) string {
	street = strings.TrimSpace(street)
	number = strings.TrimSpace(number)
	district = strings.TrimSpace(district)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)

	var b strings.Builder
	if street != "" {
		b.WriteString(street)
		if number != "" {
			b.WriteString(", ")
			b.WriteString(number)
		}
	}
	if district != "" {
		if b.Len() > 0 {
			b.WriteString(" - ")
		}
		b.WriteString(district)
	}
	if city != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(city)
		if state != "" {
			b.WriteString("/")
			b.WriteString(strings.ToUpper(state))
		}
	} else if state != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strings.ToUpper(state))
	}
	return b.String()
}

// FormatBRL masks an integer amount of centavos as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	reais := cents / 100
	rest := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), rest)
	if negative {
		out = "-" + out
	}
	return out
}

var (
	// route endpoints are sequences of capitalized words ("São Paulo",
	// "GRU"); a lowercase word ends the destination so trailing copy like
	// "executiva" stays out of it
	offerRouteRe = regexp.MustCompile(`((?:[A-ZÀ-Ú][\wà-ú.]* ?)+)\s*(?:->|→|[xX]|✈)\s*((?:[A-ZÀ-Ú][\wà-ú.]* ?)+)`)
	offerPriceRe = regexp.MustCompile(`R\$\s*([\d.]+)(?:,(\d{2}))?`)
)

// ParsedOffer is what ParseOfferLine could extract from a pasted
// consolidator line; zero values mean the field was not found.
type ParsedOffer struct {
	Origin      string
	Destination string
	PriceCents  int64
}

// ParseOfferLine pulls origin/destination/price out of a pasted line like
// "São Paulo -> Lisboa executiva R$ 8.990,00". It is a convenience fill,
// not a validator: admins can always type the fields by hand.
func ParseOfferLine(line string) (ParsedOffer, bool) {
	var offer ParsedOffer
	found := false

	if m := offerRouteRe.FindStringSubmatch(line); m != nil {
		offer.Origin = strings.TrimSpace(m[1])
		offer.Destination = strings.TrimSpace(m[2])
		found = true
	}

	if m := offerPriceRe.FindStringSubmatch(line); m != nil {
		whole := strings.ReplaceAll(m[1], ".", "")
		if reais, err := strconv.ParseInt(whole, 10, 64); err == nil {
			offer.PriceCents = reais * 100
			if m[2] != "" {
				if centavos, err := strconv.ParseInt(m[2], 10, 64); err == nil {
					offer.PriceCents += centavos
				}
			}
			found = true
		}
	}

	return offer, found
}

var slugAccents = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

var slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases, strips pt-BR accents and collapses everything else
// into single hyphens: "Casa à Beira-Mar" -> "casa-a-beira-mar".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugAccents.Replace(s)
	s = slugInvalidRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
