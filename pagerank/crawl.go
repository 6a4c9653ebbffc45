package pagerank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ErrCrawl is returned when a corpus directory cannot be read or parsed.
var ErrCrawl = errors.New("pagerank: crawl failed")

// Crawl parses every .html file in dir and builds a Corpus whose pages are
// the file names and whose links are the <a href> targets found in each
// file. Links leaving the corpus and self-links are dropped. Returns
// ErrCrawl on I/O or parse failures and ErrEmptyCorpus when the directory
// holds no HTML files.
func Crawl(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrCrawl, dir, err)
	}

	pages := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		hrefs, err := extractLinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		pages[entry.Name()] = hrefs
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no .html files in %q", ErrEmptyCorpus, dir)
	}

	return NewCorpus(pages)
}

// extractLinks returns every <a href> value in the given HTML file.
func extractLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrCrawl, path, err)
	}
	defer f.Close()

	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrCrawl, path, err)
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					hrefs = append(hrefs, attr.Val)
					break
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return hrefs, nil
}
