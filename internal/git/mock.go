package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for testing.
// Each method is backed by a function field. If the function field is nil,
// the method returns sensible zero values.
type MockRepository struct {
	PathFunc                func() string
	WorkingDirectoryFunc    func() string
	HeadFunc                func() (Branch, error)
	BranchRemoteFunc        func(string) (string, error)
	ResolveReferenceFunc    func(string) (string, error)
	CommitFromShaFunc       func(string) (Commit, error)
	IsAncestorFunc          func(string, string) (bool, error)
	FindMergeBaseFunc       func(string, string) (string, error)
	CommitLogFunc           func(string, string) ([]Commit, error)
	RecentCommitsFunc       func(string, int) ([]Commit, error)
	FirstParentAncestorFunc func(string, int) (string, bool, error)
	ReflogFunc              func(string) ([]ReflogEntry, error)
}

func (m *MockRepository) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) Head() (Branch, error) {
	if m.HeadFunc != nil {
		return m.HeadFunc()
	}
	return Branch{}, nil
}

func (m *MockRepository) BranchRemote(branch string) (string, error) {
	if m.BranchRemoteFunc != nil {
		return m.BranchRemoteFunc(branch)
	}
	return "", nil
}

// ResolveReference reports ErrReferenceNotFound when unconfigured.
func (m *MockRepository) ResolveReference(name string) (string, error) {
	if m.ResolveReferenceFunc != nil {
		return m.ResolveReferenceFunc(name)
	}
	return "", ErrReferenceNotFound
}

func (m *MockRepository) CommitFromSha(sha string) (Commit, error) {
	if m.CommitFromShaFunc != nil {
		return m.CommitFromShaFunc(sha)
	}
	return Commit{}, nil
}

func (m *MockRepository) IsAncestor(ancestor, descendant string) (bool, error) {
	if m.IsAncestorFunc != nil {
		return m.IsAncestorFunc(ancestor, descendant)
	}
	return false, nil
}

func (m *MockRepository) FindMergeBase(sha1, sha2 string) (string, error) {
	if m.FindMergeBaseFunc != nil {
		return m.FindMergeBaseFunc(sha1, sha2)
	}
	return "", nil
}

func (m *MockRepository) CommitLog(from, to string) ([]Commit, error) {
	if m.CommitLogFunc != nil {
		return m.CommitLogFunc(from, to)
	}
	return nil, nil
}

func (m *MockRepository) RecentCommits(to string, limit int) ([]Commit, error) {
	if m.RecentCommitsFunc != nil {
		return m.RecentCommitsFunc(to, limit)
	}
	return nil, nil
}

func (m *MockRepository) FirstParentAncestor(sha string, n int) (string, bool, error) {
	if m.FirstParentAncestorFunc != nil {
		return m.FirstParentAncestorFunc(sha, n)
	}
	return "", false, nil
}

func (m *MockRepository) Reflog(refName string) ([]ReflogEntry, error) {
	if m.ReflogFunc != nil {
		return m.ReflogFunc(refName)
	}
	return nil, nil
}
