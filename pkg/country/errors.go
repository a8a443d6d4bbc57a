package country

import "errors"

var (
	// ErrEmptyDataset is returned when a source yields no records.
	ErrEmptyDataset = errors.New("country dataset is empty")

	// ErrInvalidRecord is returned when a record has a blank name or code,
	// a non-positive national number length, or an empty or duplicated city list.
	ErrInvalidRecord = errors.New("invalid country record")

	// ErrDuplicateName is returned when two records share a name.
	ErrDuplicateName = errors.New("duplicate country name")

	// ErrDuplicateCode is returned when two records share a calling code.
	ErrDuplicateCode = errors.New("duplicate calling code")

	// ErrNilSource is returned when New is called without a source.
	ErrNilSource = errors.New("country source is nil")

	// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrFailedToReadDataset is returned when the dataset file cannot be read.
	ErrFailedToReadDataset = errors.New("failed to read country dataset")

	// ErrFailedToParseDataset is returned when the dataset content cannot be decoded.
	ErrFailedToParseDataset = errors.New("failed to parse country dataset")
)
