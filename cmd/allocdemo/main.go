// Command allocdemo exercises the pool allocator through both containers:
// an ordered map and a list, each once with the system allocator and once
// with a pool of chunk capacity 10, filled with ten values and printed.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lerakirpu/AllocatorLab/alloc"
	"github.com/lerakirpu/AllocatorLab/list"
	"github.com/lerakirpu/AllocatorLab/treemap"
)

func factorial(n int) int64 {
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result
}

func intLess(a, b int) bool { return a < b }

func run() error {
	fmt.Println("treemap, system allocator:")
	m1 := treemap.New[int, int64](intLess)
	for i := 0; i < 10; i++ {
		if err := m1.Put(i, factorial(i)); err != nil {
			return err
		}
	}
	for k, v := range m1.All() {
		fmt.Printf("%d %d\n", k, v)
	}

	fmt.Println("\ntreemap, pool allocator:")
	mapPool := alloc.NewPool[int](10)
	defer mapPool.Release()
	m2 := treemap.NewWith[int, int64](intLess, mapPool)
	for i := 0; i < 10; i++ {
		if err := m2.Put(i, factorial(i)); err != nil {
			return err
		}
	}
	for k, v := range m2.All() {
		fmt.Printf("%d %d\n", k, v)
	}

	fmt.Println("\nlist, system allocator:")
	l1 := list.New[int]()
	for i := 0; i < 10; i++ {
		if err := l1.PushBack(i); err != nil {
			return err
		}
	}
	printList(l1)

	fmt.Println("\nlist, pool allocator:")
	listPool := alloc.NewPool[int](10)
	defer listPool.Release()
	l2 := list.NewWith[int](listPool)
	for i := 0; i < 10; i++ {
		if err := l2.PushBack(i); err != nil {
			return err
		}
	}
	printList(l2)

	return nil
}

func printList(l *list.List[int]) {
	parts := make([]string, 0, l.Len())
	for v := range l.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	fmt.Println(strings.Join(parts, " "))
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "allocdemo:", err)
		os.Exit(1)
	}
}
