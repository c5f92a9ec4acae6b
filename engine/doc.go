// Package engine is a small in-memory relational engine.
//
// A Session registers CSV and parquet files as named tables. Session.Table
// returns a Frame, an immutable plan that records filter, limit and sort
// steps and runs them only when the frame is collected or written:
//
//	sess := engine.NewSession()
//	if err := sess.RegisterCSV(ctx, "t", "people.csv", reader.CSVOptions{}); err != nil {
//		return err
//	}
//	df, _ := sess.Table("t")
//	df, _ = df.Filter(engine.Col("city").Eq(engine.Utf8("Oslo")))
//	df, _ = df.Limit(0, 10)
//	return df.WriteCSV(ctx, "out.csv")
package engine
