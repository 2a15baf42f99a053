// Package table projects a slice of records into a generic row/column
// structure.
//
// Columns are derived from the record type with the gorm schema parser, so
// the same tags that shape a database table shape the projection: gorm
// "column" renames a column, gorm "-" drops it, and embedded structs are
// flattened. Records must be flat; fields holding other structs are parsed
// as relationships and rejected unless they implement sql.Scanner.
package table
