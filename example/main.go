package main

import (
	"errors"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/theflywheel/htable"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	t := htable.New[int](5, htable.WithProbe(htable.DoubleHash), htable.WithLogger(logger))
	fmt.Printf("Hash table created with capacity %d\n", t.Capacity())

	// Insert some data; the table grows as it fills
	for i := 0; i < 10; i++ {
		if err := t.Put(fmt.Sprintf("key-%d", i), i*100); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	fmt.Printf("Inserted %d key-value pairs, capacity %d, load factor %.2f\n",
		t.Len(), t.Capacity(), t.LoadFactor())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		value, found, err := t.Get(fmt.Sprintf("key-%d", i))
		if err != nil {
			log.Fatalf("Failed to get key %d: %v", i, err)
		}
		if found {
			fmt.Printf("key-%d => Value %d\n", i, value)
		} else {
			fmt.Printf("key-%d not found\n", i)
		}
	}

	// Update a value
	if err := t.Put("key-2", 999); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}
	if value, found, _ := t.Get("key-2"); found {
		fmt.Printf("Updated key-2 => Value %d\n", value)
	}

	// Empty keys are rejected
	if err := t.Put("", 1); errors.Is(err, htable.ErrInvalidArgument) {
		fmt.Println("Empty key rejected:", err)
	}

	stats := t.Stats()
	fmt.Printf("Resizes: %d, average probes per key: %.2f, longest probe: %d\n",
		stats.Resizes, float64(stats.Probes)/float64(stats.Items), stats.MaxProbe)

	fmt.Println("Example completed successfully")
}
