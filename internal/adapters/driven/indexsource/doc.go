// Package indexsource provides loaders for the serialized search index:
// a file loader for local archives and an HTTP loader matching the
// runtime contract of a published archive.
//
// Both wrap failures in domain.ErrIndexUnavailable so the search engine
// can treat any load failure uniformly and stay inert.
package indexsource
