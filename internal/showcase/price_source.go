package showcase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/showcase-next/internal/constants"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrPriceFragmentStatus  = errors.New("price fragment request failed")
	ErrPriceFragmentMissing = errors.New("price fragment element missing")
)

// HTTPPriceSource 商品信息接口的价格片段客户端。
// 请求 GET <base><path>?variant=<id>&section_id=<id>，从响应 HTML 中按
// price-<sectionId> 元素标识提取子片段原样返回（与服务端渲染约定硬绑定）。
type HTTPPriceSource struct {
	baseURL string
	path    string
	client  *http.Client
}

// NewHTTPPriceSource 创建价格片段客户端
func NewHTTPPriceSource(baseURL, path string, timeout time.Duration) *HTTPPriceSource {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPPriceSource{
		baseURL: baseURL,
		path:    path,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchPriceFragment 抓取并提取价格片段内部 HTML
func (s *HTTPPriceSource) FetchPriceFragment(ctx context.Context, variantID int64, sectionID string) (string, error) {
	endpoint, err := s.buildURL(variantID, sectionID)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrPriceFragmentStatus, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	selection := doc.Find("#" + constants.PriceFragmentIDPrefix + sectionID)
	if selection.Length() == 0 {
		return "", fmt.Errorf("%w: #%s%s", ErrPriceFragmentMissing, constants.PriceFragmentIDPrefix, sectionID)
	}
	html, err := selection.First().Html()
	if err != nil {
		return "", err
	}
	return html, nil
}

func (s *HTTPPriceSource) buildURL(variantID int64, sectionID string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	u.Path = s.path
	query := u.Query()
	query.Set(constants.VariantQueryParam, strconv.FormatInt(variantID, 10))
	query.Set(constants.SectionQueryParam, sectionID)
	u.RawQuery = query.Encode()
	return u.String(), nil
}
