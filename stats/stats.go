// Package stats computes aggregate statistics over an in-memory collection
// of blog records. Every function is pure and deterministic for a given
// input order: no I/O, no mutation of the input, identical results on
// repeated calls.
package stats

import "github.com/Zamizmi/fullstack-blogi/blogs"

// AuthorBlogCount is the result of MostBlogs.
type AuthorBlogCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the result of MostLikes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes across all records. An empty collection totals 0.
func TotalLikes(list []blogs.Blog) int {
	total := 0
	for _, b := range list {
		total += b.Likes
	}
	return total
}

// MaxLikes returns the highest like count present. An empty collection
// yields 0; that is a defined boundary value, not an error. Callers that
// need to tell an empty collection apart from a zero-liked one should use
// FavoriteBlog, whose sentinel is unambiguous.
func MaxLikes(list []blogs.Blog) int {
	if len(list) == 0 {
		return 0
	}
	max := list[0].Likes
	for _, b := range list[1:] {
		if b.Likes > max {
			max = b.Likes
		}
	}
	return max
}

// FavoriteBlog returns a copy of the record with the most likes, or nil for
// an empty collection. Ties go to the first occurrence in input order.
func FavoriteBlog(list []blogs.Blog) *blogs.Blog {
	if len(list) == 0 {
		return nil
	}
	favorite := list[0]
	for _, b := range list[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return &favorite
}

// MostBlogs returns the author with the most records, or nil for an empty
// collection. Authors group by exact string match, so records without an
// author form their own "" bucket rather than being dropped. Ties go to
// the author encountered first in input order.
func MostBlogs(list []blogs.Blog) *AuthorBlogCount {
	if len(list) == 0 {
		return nil
	}

	counts := map[string]int{}
	order := []string{}
	for _, b := range list {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	best := AuthorBlogCount{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > best.Blogs {
			best = AuthorBlogCount{Author: author, Blogs: counts[author]}
		}
	}
	return &best
}

// MostLikes returns the author with the highest cumulative likes, or nil
// for an empty collection. Grouping and tie-breaking follow MostBlogs.
func MostLikes(list []blogs.Blog) *AuthorLikes {
	if len(list) == 0 {
		return nil
	}

	likes := map[string]int{}
	order := []string{}
	for _, b := range list {
		if _, seen := likes[b.Author]; !seen {
			order = append(order, b.Author)
		}
		likes[b.Author] += b.Likes
	}

	best := AuthorLikes{Author: order[0], Likes: likes[order[0]]}
	for _, author := range order[1:] {
		if likes[author] > best.Likes {
			best = AuthorLikes{Author: author, Likes: likes[author]}
		}
	}
	return &best
}
