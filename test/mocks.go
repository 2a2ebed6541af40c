package test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"stylesnapapi/models"
	"stylesnapapi/services"

	"github.com/hibiken/asynq"
)

var ErrMockFailure = errors.New("mock failure")

type AWSProviderMock struct {
	MockUrl string
	Fail    bool
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.Fail {
		return "", ErrMockFailure
	}
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", fileKey), nil
}

type URLCacheMock struct {
	Fail bool
}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if m.Fail {
		return "", ErrMockFailure
	}
	if objectKey == "" {
		return "", nil
	}
	return fmt.Sprintf("https://cached.example.com/%s", objectKey), nil
}

type ClosetMock struct {
	mu    sync.Mutex
	Items map[uint][]models.Clothing
	Err   error
}

func (m *ClosetMock) AddItem(ctx context.Context, clothing *models.Clothing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.Items == nil {
		m.Items = map[uint][]models.Clothing{}
	}
	var next uint
	for _, clothes := range m.Items {
		for _, clothing := range clothes {
			next = max(next, clothing.ID)
		}
	}
	clothing.ID = next + 1
	clothing.CreatedAt = time.Now()
	clothing.UpdatedAt = clothing.CreatedAt
	m.Items[clothing.OwnerID] = append(m.Items[clothing.OwnerID], *clothing)
	return nil
}

func (m *ClosetMock) RemoveItem(ctx context.Context, userID, clothingID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Items[userID] {
		clothing := &m.Items[userID][i]
		if clothing.ID == clothingID && clothing.RemovedAt == nil {
			now := time.Now()
			clothing.RemovedAt = &now
			return nil
		}
	}
	return services.ErrClothingNotFound
}

func (m *ClosetMock) ListItems(ctx context.Context, userID uint) ([]models.Clothing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Clothing
	for _, clothing := range m.Items[userID] {
		if clothing.RemovedAt == nil {
			out = append(out, clothing)
		}
	}
	return out, nil
}

type HistoryMock struct {
	mu      sync.Mutex
	Records []models.GeneratedOutfit
	Fail    bool
}

func (m *HistoryMock) Record(ctx context.Context, outfit *models.GeneratedOutfit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return ErrMockFailure
	}
	outfit.ID = uint(len(m.Records) + 1)
	outfit.CreatedAt = time.Now()
	outfit.UpdatedAt = outfit.CreatedAt
	m.Records = append(m.Records, *outfit)
	return nil
}

func (m *HistoryMock) List(ctx context.Context, userID uint, filter services.HistoryFilter) ([]models.GeneratedOutfit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	limit := services.ClampHistoryLimit(filter.Limit)
	var out []models.GeneratedOutfit
	for _, record := range slices.Backward(m.Records) {
		if record.UserAccountID == userID && filter.Matches(record) && len(out) < limit {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *HistoryMock) Rate(ctx context.Context, userID, outfitID uint, rating int) (*models.GeneratedOutfit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Records {
		if m.Records[i].ID == outfitID && m.Records[i].UserAccountID == userID {
			m.Records[i].Rating = &rating
			record := m.Records[i]
			return &record, nil
		}
	}
	return nil, services.ErrOutfitNotFound
}

func (m *HistoryMock) Saved() []models.GeneratedOutfit {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.Records)
}

type UserMock struct {
	Users map[uint]*models.UserAccount
}

func NewUserMock(users ...*models.UserAccount) *UserMock {
	m := &UserMock{Users: map[uint]*models.UserAccount{}}
	for _, user := range users {
		m.Users[user.ID] = user
	}
	return m
}

func (m *UserMock) GetUser(ctx context.Context, userID uint) (*models.UserAccount, error) {
	user, ok := m.Users[userID]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

func (m *UserMock) UpdateSettings(ctx context.Context, userID uint, in models.UserSettingsIn) (*models.UserAccount, error) {
	user, err := m.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.ReceiveDailyOutfit != nil {
		user.ReceiveDailyOutfit = *in.ReceiveDailyOutfit
	}
	if in.DefaultOccasion != nil {
		user.DefaultOccasion = services.SettingValue(in.DefaultOccasion)
	}
	if in.DefaultWeather != nil {
		user.DefaultWeather = services.SettingValue(in.DefaultWeather)
	}
	if in.DefaultStyle != nil {
		user.DefaultStyle = services.SettingValue(in.DefaultStyle)
	}
	return user, nil
}

func (m *UserMock) DailyOutfitUsers(ctx context.Context) ([]models.UserAccount, error) {
	var out []models.UserAccount
	for _, user := range m.Users {
		if user.ReceiveDailyOutfit && !user.Banned {
			out = append(out, *user)
		}
	}
	slices.SortFunc(out, func(a, b models.UserAccount) int {
		return int(a.ID) - int(b.ID)
	})
	return out, nil
}

// EnqueuerMock records enqueued tasks instead of talking to redis.
type EnqueuerMock struct {
	mu    sync.Mutex
	Tasks []*asynq.Task
	Fail  bool
}

func (m *EnqueuerMock) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return nil, ErrMockFailure
	}
	m.Tasks = append(m.Tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprintf("task-%d", len(m.Tasks)), Queue: "generate", Type: task.Type()}, nil
}
