package entity

import (
	"bytes"
	"encoding/json"
)

// DocumentValue is one entry of the preferred "documents" shape on a client
// record. On the wire it is either a bare string URL or an object with
// url/original_filename/bytes metadata, so it carries a custom unmarshaler.
type DocumentValue struct {
	URL               string `json:"url"`
	OriginalFilename  string `json:"original_filename"`
	Bytes             int64  `json:"bytes"`
	CopiedFromInquiry bool   `json:"copied_from_enquiry"`

	// IsString records that the wire value was a bare URL string.
	IsString bool `json:"-"`
}

func (d *DocumentValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var url string

		err := json.Unmarshal(data, &url)
		if err != nil {
			return err
		}

		*d = DocumentValue{URL: url, IsString: true}

		return nil
	}

	type alias DocumentValue

	var v alias

	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	// Some historical records use file_name or name instead of
	// original_filename.
	var extra struct {
		FileName string `json:"file_name"`
		Filename string `json:"filename"`
		Name     string `json:"name"`
	}

	err = json.Unmarshal(data, &extra)
	if err != nil {
		return err
	}

	if v.OriginalFilename == "" {
		switch {
		case extra.FileName != "":
			v.OriginalFilename = extra.FileName
		case extra.Filename != "":
			v.OriginalFilename = extra.Filename
		case extra.Name != "":
			v.OriginalFilename = extra.Name
		}
	}

	*d = DocumentValue(v)

	return nil
}

func (d DocumentValue) MarshalJSON() ([]byte, error) {
	if d.IsString {
		return json.Marshal(d.URL)
	}

	type alias DocumentValue

	return json.Marshal(alias(d))
}

// ProcessedDocument is the legacy "processed_documents" shape.
type ProcessedDocument struct {
	FileName           string `json:"file_name"`
	FileSize           int64  `json:"file_size"`
	VerificationStatus string `json:"verification_status"`
}

// ResolvedDocument is the outcome of running the document resolution chain
// for one logical document key.
type ResolvedDocument struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url,omitempty"`
}

// HasURL reports whether the document can be opened directly, without going
// through the backend byte-stream endpoint.
func (r ResolvedDocument) HasURL() bool {
	return r.URL != ""
}

type DownloadedDocument struct {
	Name string
	Data []byte
}
