package readthrough_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/unkn0wn-root/readthrough"
	"github.com/unkn0wn-root/readthrough/driver"
	"github.com/unkn0wn-root/readthrough/flight"
)

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func Example() {
	ctx := context.Background()
	drv := driver.NewMemory()

	db := map[int]User{1: {ID: 1, Name: "Ada"}}
	users, err := readthrough.New(drv, readthrough.Options[int, User]{
		Namespace: "user",
		Key:       strconv.Itoa,
		Loader: func(_ context.Context, id int) (User, error) {
			fmt.Println("loading", id)
			u, ok := db[id]
			if !ok {
				return User{}, fmt.Errorf("user %d not found", id)
			}
			return u, nil
		},
	})
	if err != nil {
		panic(err)
	}

	u, _ := users.Get(ctx, 1) // miss: loads and caches
	fmt.Println(u.Name)
	u, _ = users.Get(ctx, 1) // hit
	fmt.Println(u.Name)

	raw, _, _ := drv.GetItem(ctx, "user:1")
	fmt.Println(raw)

	_, err = users.Get(ctx, 2)
	fmt.Println(err)
	// Output:
	// loading 1
	// Ada
	// Ada
	// {"id":1,"name":"Ada"}
	// loading 2
	// user 2 not found
}

func ExampleResource_Set() {
	ctx := context.Background()
	counts, _ := readthrough.New(driver.NewMemory(), readthrough.Options[string, int]{
		Key:    func(page string) string { return "views:" + page },
		Loader: func(context.Context, string) (int, error) { return 0, nil },
	})

	_ = counts.Set(ctx, "/home", 42)
	n, _ := counts.Get(ctx, "/home")
	fmt.Println(n)
	// Output: 42
}

func Example_coalesced() {
	ctx := context.Background()
	base, _ := readthrough.New(driver.NewMemory(), readthrough.Options[int, User]{
		Key:    strconv.Itoa,
		Loader: func(_ context.Context, id int) (User, error) { return User{ID: id, Name: "Grace"}, nil },
	})
	users := flight.Wrap(base)

	u, _ := users.Get(ctx, 7)
	fmt.Println(u.Name, users.Key(7))
	// Output: Grace 7
}
