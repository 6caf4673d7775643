package firestore

import (
	"path"

	fs "google.golang.org/api/firestore/v1"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

// Persisted field names in the proverbs collection.
const (
	fieldText        = "text"
	fieldMeaning     = "meaning"
	fieldTranslation = "translation"
	fieldCategory    = "category"
	fieldKeywords    = "keywords"
)

// toDocument converts a domain record to its Firestore document shape.
// The record ID is carried in the document name, not in the fields.
func toDocument(p domain.Proverb) *fs.Document {
	keywords := make([]*fs.Value, len(p.Keywords))
	for i, kw := range p.Keywords {
		keywords[i] = &fs.Value{StringValue: kw, ForceSendFields: []string{"StringValue"}}
	}

	return &fs.Document{
		Fields: map[string]fs.Value{
			fieldText:        stringValue(p.Text),
			fieldMeaning:     stringValue(p.Meaning),
			fieldTranslation: stringValue(p.Translation),
			fieldCategory:    stringValue(p.Category),
			fieldKeywords:    {ArrayValue: &fs.ArrayValue{Values: keywords}},
		},
	}
}

// fromDocument converts a Firestore document back to a domain record.
// Missing fields come back as empty strings; the document ID is the last
// segment of the resource name.
func fromDocument(doc *fs.Document) domain.Proverb {
	p := domain.Proverb{
		ID:          path.Base(doc.Name),
		Text:        doc.Fields[fieldText].StringValue,
		Meaning:     doc.Fields[fieldMeaning].StringValue,
		Translation: doc.Fields[fieldTranslation].StringValue,
		Category:    doc.Fields[fieldCategory].StringValue,
	}

	if av := doc.Fields[fieldKeywords].ArrayValue; av != nil {
		p.Keywords = make([]string, 0, len(av.Values))
		for _, v := range av.Values {
			if v != nil {
				p.Keywords = append(p.Keywords, v.StringValue)
			}
		}
	}

	return p
}

// stringValue builds a Firestore string value. Empty strings are
// force-sent so optional fields (translation) persist as "" rather than
// being dropped from the document.
func stringValue(s string) fs.Value {
	return fs.Value{StringValue: s, ForceSendFields: []string{"StringValue"}}
}
