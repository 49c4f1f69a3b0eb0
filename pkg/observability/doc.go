/*
Package observability provides tools for monitoring the lesolver pipeline.

It turns the pipeline's lifecycle hooks into Prometheus metrics and offers helpers to
combine several sets of hooks (for example metrics plus debug logging).
*/
package observability
