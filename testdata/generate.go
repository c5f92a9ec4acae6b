//go:build ignore

// Generates people.parquet and people.csv, sample inputs for trying mdata.
// Run with: go run testdata/generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

type Person struct {
	ID     int64    `parquet:"id"`
	Name   string   `parquet:"name"`
	City   string   `parquet:"city"`
	Age    *int32   `parquet:"age,optional"`
	Active bool     `parquet:"active"`
	Score  *float64 `parquet:"score,optional"`
}

func main() {
	people := []Person{
		{ID: 1, Name: "alice", City: "Oslo", Age: int32Ptr(30), Active: true, Score: float64Ptr(95.5)},
		{ID: 2, Name: "bob", City: "Bergen", Age: int32Ptr(25), Active: false, Score: float64Ptr(82.3)},
		{ID: 3, Name: "charlie", City: "Oslo", Age: nil, Active: true, Score: float64Ptr(88.7)},
		{ID: 4, Name: "diana", City: "Tromsø", Age: int32Ptr(28), Active: true, Score: nil},
		{ID: 5, Name: "eve", City: "Bergen", Age: int32Ptr(42), Active: false, Score: float64Ptr(76.8)},
	}

	if err := writeParquet("people.parquet", people); err != nil {
		log.Fatal(err)
	}
	if err := writeCSV("people.csv", people); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated people.parquet and people.csv with %d rows", len(people))
}

func writeParquet(path string, people []Person) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Person](file)
	if _, err := writer.Write(people); err != nil {
		return err
	}
	return writer.Close()
}

func writeCSV(path string, people []Person) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"id", "name", "city", "age", "active", "score"}); err != nil {
		return err
	}
	for _, p := range people {
		age, score := "", ""
		if p.Age != nil {
			age = strconv.Itoa(int(*p.Age))
		}
		if p.Score != nil {
			score = strconv.FormatFloat(*p.Score, 'g', -1, 64)
		}
		record := []string{strconv.FormatInt(p.ID, 10), p.Name, p.City, age, strconv.FormatBool(p.Active), score}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func int32Ptr(v int32) *int32 { return &v }

func float64Ptr(v float64) *float64 { return &v }
