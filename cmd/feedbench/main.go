package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/d60-Lab/social-core/config"
	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/database"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 { return 0 }
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 { k = 0 }
	if k >= len(xs) { k = len(xs)-1 }
	return xs[k]
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	_ = db.AutoMigrate(&model.Follow{}, &model.Post{}, &model.Story{})

	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	storyRepo := repository.NewStoryRepository(db)

	// params
	FOLLOWEES := 500          // how many authors the reader follows
	POSTS := 50               // posts per author
	STORIES := 5              // stories per author (half already expired)
	READS := 200              // feed page reads to sample
	if s := os.Getenv("FOLLOWEES"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { FOLLOWEES = v } }
	if s := os.Getenv("POSTS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { POSTS = v } }
	if s := os.Getenv("STORIES"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { STORIES = v } }
	if s := os.Getenv("READS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { READS = v } }

	// clean tables for a reproducible run (ok for local bench)
	_ = db.Exec("DELETE FROM follows").Error
	_ = db.Exec("DELETE FROM posts").Error
	_ = db.Exec("DELETE FROM stories").Error

	ctx := context.Background()
	reader := int64(1)
	now := time.Now()

	// seed: reader follows FOLLOWEES authors, each with posts + stories
	seedStart := time.Now()
	for i := 0; i < FOLLOWEES; i++ {
		author := int64(100 + i)
		_ = followRepo.Create(ctx, reader, author)
		posts := make([]model.Post, POSTS)
		for j := 0; j < POSTS; j++ {
			posts[j] = model.Post{OwnerID: author, Title: fmt.Sprintf("post %d/%d", i, j), CreatedAt: now.Add(-time.Duration(j) * time.Minute)}
		}
		_ = db.CreateInBatches(&posts, 1000).Error
		stories := make([]model.Story, STORIES)
		for j := 0; j < STORIES; j++ {
			exp := now.Add(24 * time.Hour)
			if j%2 == 1 { exp = now.Add(-time.Hour) } // already expired
			stories[j] = model.Story{OwnerID: author, MediaRef: fmt.Sprintf("blob://%d/%d", i, j), CreatedAt: now, ExpiresAt: exp}
		}
		_ = db.CreateInBatches(&stories, 1000).Error
	}
	fmt.Printf("FOLLOWEES=%d POSTS=%d STORIES=%d READS=%d seed=%v\n", FOLLOWEES, POSTS, STORIES, READS, time.Since(seedStart))

	// measure followee feed page reads
	var req pagination.Request
	req.Normalize()
	feedReads := make([]time.Duration, 0, READS)
	for i := 0; i < READS; i++ {
		st := time.Now()
		rows, total := must2(postRepo.ListFollowing(ctx, reader, req.Offset(), req.Size))
		feedReads = append(feedReads, time.Since(st))
		if i == 0 { fmt.Printf("Feed first page: rows=%d total=%d\n", len(rows), total) }
	}
	var sum time.Duration
	for _, d := range feedReads { sum += d }
	fmt.Printf("Feed read latency: avg=%v p95=%v p99=%v\n", sum/time.Duration(len(feedReads)), pct(feedReads, 0.95), pct(feedReads, 0.99))

	// measure active story feed reads
	storyReads := make([]time.Duration, 0, READS)
	for i := 0; i < READS; i++ {
		st := time.Now()
		_, _ = must2(storyRepo.ListFollowingActive(ctx, reader, now, req.Offset(), req.Size))
		storyReads = append(storyReads, time.Since(st))
	}
	sum = 0
	for _, d := range storyReads { sum += d }
	fmt.Printf("Story feed latency: avg=%v p95=%v p99=%v\n", sum/time.Duration(len(storyReads)), pct(storyReads, 0.95), pct(storyReads, 0.99))

	// measure one bulk expiry sweep over the seeded expired half
	st := time.Now()
	reaped := must(storyRepo.DeleteExpired(ctx, now))
	fmt.Printf("Expiry sweep: reaped=%d in %v\n", reaped, time.Since(st))
}

func must2[A, B any](a A, b B, err error) (A, B) { if err != nil { panic(err) }; return a, b }
