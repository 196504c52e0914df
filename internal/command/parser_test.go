package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/msg"
)

type fakeSchema struct {
	bindings []domain.Binding
}

func (f *fakeSchema) CommandBindings() []domain.Binding { return f.bindings }

type recordedCall struct {
	typ domain.CallType
	req domain.CallRequest
}

type fakeClient struct {
	calls   []recordedCall
	respond func(typ domain.CallType, req domain.CallRequest) (*domain.CallResponse, error)
}

func (f *fakeClient) PerformCall(_ context.Context, typ domain.CallType, req domain.CallRequest) (*domain.CallResponse, error) {
	f.calls = append(f.calls, recordedCall{typ: typ, req: req})
	if f.respond != nil {
		return f.respond(typ, req)
	}
	return &domain.CallResponse{Type: domain.CallResponseTypeOK}, nil
}

type fakeUsers struct {
	local  map[string]domain.User // by username
	byID   map[string]domain.User
	remote map[string]domain.User // by username, fetch only
}

func (f *fakeUsers) LookupUserByID(id string) (*domain.User, bool) {
	if u, ok := f.byID[id]; ok {
		return &u, true
	}
	return nil, false
}

func (f *fakeUsers) LookupUserByUsername(username string) (*domain.User, bool) {
	if u, ok := f.local[username]; ok {
		return &u, true
	}
	return nil, false
}

func (f *fakeUsers) FetchUserByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.remote {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeUsers) FetchUserByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := f.remote[username]; ok {
		return &u, nil
	}
	return nil, errors.New("not found")
}

type fakeChannels struct {
	byName map[string]domain.Channel // teamID + "/" + name
	byID   map[string]domain.Channel
}

func (f *fakeChannels) LookupChannelByID(id string) (*domain.Channel, bool) {
	if c, ok := f.byID[id]; ok {
		return &c, true
	}
	return nil, false
}

func (f *fakeChannels) LookupChannelByName(teamID, name string) (*domain.Channel, bool) {
	if c, ok := f.byName[teamID+"/"+name]; ok {
		return &c, true
	}
	return nil, false
}

func (f *fakeChannels) FetchChannelByID(_ context.Context, id string) (*domain.Channel, error) {
	return nil, errors.New("not found")
}

func (f *fakeChannels) FetchChannelByName(_ context.Context, teamID, name string) (*domain.Channel, error) {
	return nil, errors.New("not found")
}

func createForm() *domain.Form {
	return &domain.Form{
		Call: &domain.Call{Path: "/issue/create/submit"},
		Fields: []domain.Field{
			{Name: "project", Type: domain.FieldTypeText, Position: 1, IsRequired: true},
			{Name: "summary", Type: domain.FieldTypeText, Position: 2},
			{Name: "priority", Type: domain.FieldTypeStaticSelect, Options: []domain.SelectOption{
				{Label: "High", Value: "high"},
				{Label: "Low", Value: "low"},
			}},
			{Name: "done", Type: domain.FieldTypeBool},
			{Name: "assignee", Label: "user", Type: domain.FieldTypeUser, Hint: "@username"},
			{Name: "epic", Type: domain.FieldTypeDynamicSelect},
			{Name: "notes", Type: domain.FieldTypeMarkdown},
			{Name: "origin", Type: domain.FieldTypeText, ReadOnly: true, Value: "cli"},
		},
	}
}

func createBindings() []domain.Binding {
	return []domain.Binding{
		{
			AppID: "jira",
			Label: "jira",
			Bindings: []domain.Binding{
				{
					AppID: "jira",
					Label: "issue",
					Bindings: []domain.Binding{
						{AppID: "jira", Label: "create", Form: createForm()},
						{AppID: "jira", Label: "view", Call: &domain.Call{Path: "/issue/view"}},
					},
				},
			},
		},
		{AppID: "jira", Label: "fetchy", Call: &domain.Call{Path: "/fetchy"}},
		{AppID: "jira", Label: "formless"},
	}
}

func newTestParser(opts ...Option) (*Parser, *fakeClient) {
	client := &fakeClient{}
	users := &fakeUsers{
		local:  map[string]domain.User{"bob": {ID: "u-bob", Username: "bob"}},
		byID:   map[string]domain.User{"u-bob": {ID: "u-bob", Username: "bob"}},
		remote: map[string]domain.User{"carol": {ID: "u-carol", Username: "carol"}},
	}
	channels := &fakeChannels{
		byName: map[string]domain.Channel{"t1/town-square": {ID: "c-ts", Name: "town-square", DisplayName: "Town Square", TeamID: "t1"}},
		byID:   map[string]domain.Channel{"c-ts": {ID: "c-ts", Name: "town-square", DisplayName: "Town Square", TeamID: "t1"}},
	}
	cc := domain.CallContext{ChannelID: "c1", TeamID: "t1"}
	p := NewParser(&fakeSchema{bindings: createBindings()}, client, users, channels, cc, opts...)
	return p, client
}

func TestComposeCall_HappyPath(t *testing.T) {
	p, _ := newTestParser()

	req, err := p.ComposeCallFromCommand(context.Background(), "/jira issue create myproj --priority high --done --user @bob")
	require.NoError(t, err)
	require.Equal(t, "/issue/create/submit", req.Call.Path)
	require.Equal(t, "jira/issue/create", req.Context.Location)
	require.Equal(t, "jira", req.Context.AppID)
	require.Equal(t, "t1", req.Context.TeamID)

	require.Equal(t, "myproj", req.Values["project"])
	require.Equal(t, domain.SelectOption{Label: "High", Value: "high"}, req.Values["priority"])
	require.Equal(t, "true", req.Values["done"])
	require.Equal(t, domain.SelectOption{Label: "bob", Value: "u-bob"}, req.Values["assignee"])
	// Readonly default carried through untouched.
	require.Equal(t, "cli", req.Values["origin"])
}

func TestComposeCall_MissingRequired(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ComposeCallFromCommand(context.Background(), "/jira issue create --priority high")
	require.Error(t, err)
	var me *msg.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, msg.ErrMissingRequired, me.ID)
	require.Contains(t, me.Args["fields"], "project")
}

func TestComposeCall_StructuralErrorSurfaces(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ComposeCallFromCommand(context.Background(), "/jira issue create myproj --bogus x")
	var me *msg.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, msg.ErrUnknownFlag, me.ID)
	require.Equal(t, msg.KindStructural, me.Kind)
}

func TestComposeCall_UnknownCommand(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ComposeCallFromCommand(context.Background(), "/nosuch thing")
	var me *msg.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, msg.ErrNoMatch, me.ID)
}

func TestComposeCall_FetchedUserResolves(t *testing.T) {
	p, _ := newTestParser()

	req, err := p.ComposeCallFromCommand(context.Background(), "/jira issue create myproj --user carol")
	require.NoError(t, err)
	require.Equal(t, domain.SelectOption{Label: "carol", Value: "u-carol"}, req.Values["assignee"])
}

func TestComposeCall_FieldErrorsJoined(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ComposeCallFromCommand(context.Background(), "/jira issue create myproj --priority nope --user nobody")
	require.Error(t, err)
	require.ErrorContains(t, err, "nope")
	require.ErrorContains(t, err, "nobody")
}

func TestComposeCall_FormFetchAndMemoization(t *testing.T) {
	p, client := newTestParser()
	client.respond = func(typ domain.CallType, req domain.CallRequest) (*domain.CallResponse, error) {
		if typ == domain.CallTypeForm {
			return &domain.CallResponse{Type: domain.CallResponseTypeForm, Form: createForm()}, nil
		}
		return &domain.CallResponse{Type: domain.CallResponseTypeOK}, nil
	}

	_, err := p.ComposeCallFromCommand(context.Background(), "/fetchy myproj")
	require.NoError(t, err)
	_, err = p.ComposeCallFromCommand(context.Background(), "/fetchy otherproj")
	require.NoError(t, err)

	var formFetches int
	for _, c := range client.calls {
		if c.typ == domain.CallTypeForm {
			formFetches++
		}
	}
	require.Equal(t, 1, formFetches)
}

func TestComposeCall_FormFetchFailureNotMemoized(t *testing.T) {
	p, client := newTestParser()
	fail := true
	client.respond = func(typ domain.CallType, req domain.CallRequest) (*domain.CallResponse, error) {
		if typ != domain.CallTypeForm {
			return &domain.CallResponse{Type: domain.CallResponseTypeOK}, nil
		}
		if fail {
			return nil, errors.New("boom")
		}
		return &domain.CallResponse{Type: domain.CallResponseTypeForm, Form: createForm()}, nil
	}

	_, err := p.ComposeCallFromCommand(context.Background(), "/fetchy myproj")
	var me *msg.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, msg.KindTransport, me.Kind)

	fail = false
	_, err = p.ComposeCallFromCommand(context.Background(), "/fetchy myproj")
	require.NoError(t, err)
}

func TestComposeCall_FormFetchBadResponseType(t *testing.T) {
	p, client := newTestParser()
	client.respond = func(typ domain.CallType, req domain.CallRequest) (*domain.CallResponse, error) {
		return &domain.CallResponse{Type: domain.CallResponseTypeOK}, nil
	}

	_, err := p.ComposeCallFromCommand(context.Background(), "/fetchy myproj")
	var me *msg.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, msg.ErrUnexpectedResponse, me.ID)
}

func TestComposeCall_NoFormAvailable(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ComposeCallFromCommand(context.Background(), "/formless x")
	var me *msg.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, msg.ErrNoForm, me.ID)
}

func TestIsAppCommand(t *testing.T) {
	p, _ := newTestParser()

	require.True(t, p.IsAppCommand("/jira issue"))
	require.True(t, p.IsAppCommand("/JIRA issue"))
	require.False(t, p.IsAppCommand("/jira"))
	require.False(t, p.IsAppCommand("/jirax issue"))
	require.False(t, p.IsAppCommand("hello"))
}
