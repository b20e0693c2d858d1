// Package query builds backend-neutral search filters from user keywords.
//
// Everything here is pure: the same keyword, flags and page always produce
// the same Filter. The repository layer translates a Filter into a MongoDB
// document or a PostgreSQL WHERE clause.
package query
