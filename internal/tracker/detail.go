package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Comment is a single issue comment.
type Comment struct {
	Author    string
	Body      string
	CreatedAt time.Time
}

// IssueDetail is the expanded view of one issue.
type IssueDetail struct {
	Issue
	Body        string
	CommentList []Comment
}

// detailCache keeps recently viewed issue details so re-opening an
// issue doesn't hit the network again.
var detailCache *lru.Cache[string, *IssueDetail]

func init() {
	detailCache, _ = lru.New[string, *IssueDetail](64)
}

func detailKey(repo string, number int) string {
	return fmt.Sprintf("%s#%d", repo, number)
}

// Detail fetches the full detail for one issue, serving from the LRU
// cache when possible.
func Detail(repo string, number int) (*IssueDetail, error) {
	key := detailKey(repo, number)
	if d, ok := detailCache.Get(key); ok {
		return d, nil
	}

	args := []string{
		"issue", "view", fmt.Sprintf("%d", number),
		"--json", listFields + ",body",
	}
	if repo != "" {
		args = append(args, "--repo", repo)
	}

	output, err := runGH(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load issue #%d: %w", number, err)
	}

	detail, err := decodeDetail([]byte(output))
	if err != nil {
		return nil, err
	}

	detailCache.Add(key, detail)
	return detail, nil
}

// InvalidateDetails drops all cached details. Called on refresh so a
// reopened issue reflects new comments.
func InvalidateDetails() {
	detailCache.Purge()
}

func decodeDetail(data []byte) (*IssueDetail, error) {
	var raw issueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse issue detail: %w", err)
	}

	detail := &IssueDetail{
		Issue: raw.toIssue(),
		Body:  raw.Body,
	}
	for _, c := range raw.Comments {
		detail.CommentList = append(detail.CommentList, Comment{
			Author:    c.Author.Login,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return detail, nil
}
