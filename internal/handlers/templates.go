package handlers

import "html/template"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<html>
  <head>
    <title>Admin Dashboard</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 20px; }
      table { border-collapse: collapse; width: 100%; }
      th, td { border: 1px solid #ddd; padding: 8px; }
      th { background-color: #f2f2f2; cursor: pointer; }
      .pagination { margin-top: 20px; }
      .pagination a { margin: 0 5px; text-decoration: none; }
    </style>
  </head>
  <body>
    <h2>Admin Dashboard - Submissions</h2>
    <form method="get" action="/admin">
      <input type="text" name="search" placeholder="Search..." value="{{.Search}}">
      <button type="submit">Search</button>
    </form>
    <table>
      <tr>
        <th onclick="sortTable('id')">ID</th>
        <th onclick="sortTable('reference')">Reference</th>
        <th onclick="sortTable('fullname')">Full Name</th>
        <th onclick="sortTable('email')">Email</th>
        <th onclick="sortTable('phone')">Phone</th>
        <th onclick="sortTable('dob')">Date of Birth</th>
      </tr>
      {{range .Rows}}
      <tr>
        <td>{{.ID}}</td>
        <td>{{.Reference}}</td>
        <td>{{.FullName}}</td>
        <td>{{.Email}}</td>
        <td>{{.Phone}}</td>
        <td>{{.DOB}}</td>
      </tr>
      {{end}}
    </table>
    <div class="pagination">Page:
      {{$d := .}}
      {{range .Pages}}
        {{if eq . $d.Page}}<strong>{{.}}</strong>{{else}}<a href="/admin?search={{$d.Search}}&sortField={{$d.SortField}}&sortOrder={{$d.SortOrder}}&page={{.}}">{{.}}</a>{{end}}
      {{end}}
    </div>
    <br><a href="/admin/analytics" target="_blank">View Analytics</a>
    <br><a href="/export" target="_blank">Export Excel</a>
    <br><a href="/backup" target="_blank">Backup to Google Sheets</a>
    <script>
      function sortTable(field) {
        const urlParams = new URLSearchParams(window.location.search);
        const currentField = urlParams.get('sortField') || 'id';
        const currentOrder = urlParams.get('sortOrder') || 'asc';
        let newOrder = 'asc';
        if (field === currentField && currentOrder === 'asc') {
          newOrder = 'desc';
        }
        urlParams.set('sortField', field);
        urlParams.set('sortOrder', newOrder);
        window.location.search = urlParams.toString();
      }
    </script>
  </body>
</html>
`))

var analyticsTmpl = template.Must(template.New("analytics").Parse(`<html>
  <head>
    <title>Analytics</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
      body { font-family: Arial, sans-serif; margin: 20px; }
    </style>
  </head>
  <body>
    <h2>Submissions by Country</h2>
    <canvas id="countryChart" width="400" height="200"></canvas>
    <script>
      const ctx = document.getElementById('countryChart').getContext('2d');
      new Chart(ctx, {
        type: 'bar',
        data: {
          labels: {{.Labels}},
          datasets: [{
            label: 'Number of Submissions',
            data: {{.Counts}},
            backgroundColor: 'rgba(75, 192, 192, 0.6)'
          }]
        },
        options: {
          responsive: true,
          scales: { y: { beginAtZero: true } }
        }
      });
    </script>
    <br><a href="/admin">Back to Dashboard</a>
  </body>
</html>
`))
