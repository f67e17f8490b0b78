package core

type DataSet interface{}

// Analyzer consumes episode traces and accumulates a dataset.
type Analyzer interface {
	Analyze(*Trace)
	DataSet() DataSet
	Reset()
}
