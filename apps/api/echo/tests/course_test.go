package tests

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/user"
	dummydb "github.com/dikshafoundation/diksha/storage/database/dummy"
)

func courseFixtures() []course.Course {
	due := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	return []course.Course{
		{
			ID: "c1", Title: "Spoken English", Instructor: "Anjali Mehta", Status: course.StatusOngoing,
			Progress: 65, Modules: 12, CompletedModules: 8, Enrolled: 24,
			Assignments: []course.Assignment{
				{ID: "a1", Title: "Essay", DueDate: due, Status: course.AssignmentPending},
				{ID: "a2", Title: "Reading", DueDate: due, Status: course.AssignmentSubmitted},
			},
		},
		{ID: "c2", Title: "Mathematics", Instructor: "Suresh Kumar", Status: course.StatusCompleted, Progress: 100},
		{ID: "c3", Title: "English Literature", Instructor: "Anjali Mehta", Status: course.StatusDraft},
	}
}

func Test_courseApi_query(t *testing.T) {
	fx := dummydb.Fixtures{Courses: courseFixtures()}
	resetDB(t, fx)
	student := createUser(t, "Asha", "ashastu", "asha@test.org", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	path := func(params url.Values) string { return "/v1/courses?" + params.Encode() }

	tests := []httpTest{
		{name: "auth required", path: "/v1/courses", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "get all", path: "/v1/courses", token: token,
			wantCode: http.StatusOK, wantData: marchallObj(t, fx.Courses),
		},
		{
			name: "search", path: path(url.Values{"search": {"english"}}), token: token,
			wantCode: http.StatusOK, wantData: marchallList(t, fx.Courses[0], fx.Courses[2]),
		},
		{
			name: "search then status", path: path(url.Values{"search": {"english"}, "status": {"ongoing"}}), token: token,
			wantCode: http.StatusOK, wantData: marchallList(t, fx.Courses[0]),
		},
		{
			name: "retrieve", path: "/v1/courses/c2", token: token,
			wantCode: http.StatusOK, wantData: marchallObj(t, fx.Courses[1]),
		},
		{
			name: "retrieve unknown", path: "/v1/courses/nope", token: token,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "course not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_courseApi_create(t *testing.T) {
	resetDB(t, dummydb.Fixtures{})
	admin := createUser(t, "Admin", "admin1", "admin@test.org", "", []string{user.RoleAdmin}, true)
	student := createUser(t, "Asha", "ashastu", "asha@test.org", "", []string{user.RoleStudent}, true)

	body := marchallObj(t, echoMap{"title": "Computer Basics", "instructor": "Priya Nair", "status": "active", "modules": 10})

	// students may not create courses
	req, rec := newAuthRequest(http.MethodPost, "/v1/courses", getToken(t, student), body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student create: code = %v", rec.Code)
	}

	// legacy "active" literal maps onto the canonical status
	req, rec = newAuthRequest(http.MethodPost, "/v1/courses", getToken(t, admin), body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create: code = %v; body = %v", rec.Code, rec.Body.String())
	}

	var crs course.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &crs); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	if crs.ID == "" {
		t.Error("no identifier assigned")
	}
	if crs.Status != course.StatusOngoing {
		t.Errorf("status = %v; want %v", crs.Status, course.StatusOngoing)
	}
	if crs.Enrolled != 0 || crs.Progress != 0 {
		t.Errorf("new course must start empty; enrolled = %v, progress = %v", crs.Enrolled, crs.Progress)
	}

	// unknown status literal is a validation error
	req, rec = newAuthRequest(http.MethodPost, "/v1/courses", getToken(t, admin),
		marchallObj(t, echoMap{"title": "Yoga", "instructor": "Ravi", "status": "paused"}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status: code = %v; body = %v", rec.Code, rec.Body.String())
	}
}

func Test_courseApi_submitAssignment(t *testing.T) {
	resetDB(t, dummydb.Fixtures{Courses: courseFixtures()})
	student := createUser(t, "Asha", "ashastu", "asha@test.org", "", []string{user.RoleStudent}, true)
	volunteer := createUser(t, "Ravi", "ravivol", "ravi@test.org", "", []string{user.RoleVolunteer}, true)
	token := getToken(t, student)

	// volunteers have no student dashboard
	req, rec := newAuthRequest(http.MethodPost, "/v1/courses/c1/assignments/a1/submit", getToken(t, volunteer))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("volunteer submit: code = %v", rec.Code)
	}

	req, rec = newAuthRequest(http.MethodPost, "/v1/courses/c1/assignments/a1/submit", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: code = %v; body = %v", rec.Code, rec.Body.String())
	}
	var crs course.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &crs); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	if got := crs.Assignments[0].Status; got != course.AssignmentSubmitted {
		t.Errorf("assignment status = %v; want %v", got, course.AssignmentSubmitted)
	}

	// a second submit conflicts
	req, rec = newAuthRequest(http.MethodPost, "/v1/courses/c1/assignments/a1/submit", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("resubmit: code = %v", rec.Code)
	}

	req, rec = newAuthRequest(http.MethodPost, "/v1/courses/c1/assignments/nope/submit", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown assignment: code = %v", rec.Code)
	}
}
