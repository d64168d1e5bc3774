// Package models contains the GORM persistence models. Each model maps a
// domain type to its table and carries the storage tags the domain types
// must not know about. Translation always goes through ToDomain/FromDomain.
package models
