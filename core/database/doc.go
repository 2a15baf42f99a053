// Package database opens MySQL connection strings held in the settings store
// and inspects table definitions.
//
// Connections are opened through GORM with its logger silenced and verified
// with a ping bounded by Config.TimeoutSeconds.
//
// # Usage
//
//	dsn, _ := store.ConnectionString("main")
//	db, err := database.Open(ctx, dsn, cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "orders")
package database
